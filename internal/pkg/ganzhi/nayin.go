package ganzhi

// nayinNames assigns one melodic-element name (纳音) to each consecutive pair
// of the 60-cycle; entry i covers sexagenary indexes 2i and 2i+1.
var nayinNames = [30]string{
	"海中金", "炉中火", "大林木", "路旁土", "剑锋金",
	"山头火", "涧下水", "城头土", "白蜡金", "杨柳木",
	"泉中水", "屋上土", "霹雳火", "松柏木", "长流水",
	"沙中金", "山下火", "平地木", "壁上土", "金箔金",
	"覆灯火", "天河水", "大驿土", "钗钏金", "桑柘木",
	"大溪水", "沙中土", "天上火", "石榴木", "大海水",
}

// Nayin returns the melodic-element name of the stem+branch pair, or the empty
// string for a pair that never occurs in the 60-cycle.
func Nayin(s Stem, b Branch) string {
	idx := SexagenaryIndex(s, b)
	if idx < 0 {
		return ""
	}
	return nayinNames[idx/2]
}
