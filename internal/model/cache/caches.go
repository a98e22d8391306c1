package cache

import (
	"sync"

	"github.com/redis/go-redis/v9"
	"gopkg.in/guregu/null.v3"

	"mingpan.dev/backend/internal/model"
	"mingpan.dev/backend/internal/pkg/cache"
)

type Flusher func() error

var (
	AnalysisByFingerprint *cache.Set[model.BaziAnalysis]

	DailyAlmanac *cache.Singular[model.DailyAlmanac]

	once sync.Once

	SetMap             map[string]Flusher
	SingularFlusherMap map[string]Flusher
)

func Initialize(client *redis.Client) {
	once.Do(func() {
		initializeCaches(client)
	})
}

// Delete flushes the named cache. A valid key targets a keyed Set cache;
// otherwise both kinds are attempted by name.
func Delete(name string, key null.String) error {
	if key.Valid {
		if _, ok := SetMap[name]; ok {
			if err := SetMap[name](); err != nil {
				return err
			}
		}
	} else {
		if _, ok := SingularFlusherMap[name]; ok {
			if err := SingularFlusherMap[name](); err != nil {
				return err
			}
		} else if _, ok := SetMap[name]; ok {
			if err := SetMap[name](); err != nil {
				return err
			}
		}
	}
	return nil
}

func initializeCaches(client *redis.Client) {
	SetMap = make(map[string]Flusher)
	SingularFlusherMap = make(map[string]Flusher)

	// analysis
	AnalysisByFingerprint = cache.NewSet[model.BaziAnalysis](client, "analysis#fingerprint")

	SetMap["analysis#fingerprint"] = AnalysisByFingerprint.Flush

	// almanac
	DailyAlmanac = cache.NewSingular[model.DailyAlmanac]("dailyAlmanac")

	SingularFlusherMap["dailyAlmanac"] = DailyAlmanac.Delete
}
