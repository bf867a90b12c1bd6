package singleton

import (
	"time"

	"github.com/patrickmn/go-cache"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/xelaorg/xela-status/model"
)

var Version = "v0.3.1"

var (
	Conf  *model.Config
	Cache *cache.Cache
	DB    *gorm.DB
	Loc   *time.Location
)

// Init ..
func Init() {
	Loc = time.UTC
	Conf = &model.Config{}
	Cache = cache.New(5*time.Minute, 10*time.Minute)
}

// LoadSingleton loads the sub-services and starts the refresh loop.
func LoadSingleton() {
	LoadServiceStatus()
	LoadPingHistory()
	LoadRefresher()
}

// InitConfigFromPath ..
func InitConfigFromPath(path string) {
	err := Conf.Read(path)
	if err != nil {
		panic(err)
	}
}

// InitDBFromPath ..
func InitDBFromPath(path string) {
	var err error
	DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{
		CreateBatchSize: 200,
	})
	if err != nil {
		panic(err)
	}
	if Conf.Debug {
		DB = DB.Debug()
	}
	err = DB.AutoMigrate(model.PingHistory{})
	if err != nil {
		panic(err)
	}
}
