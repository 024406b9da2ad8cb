package boot

import (
	"cafe/src/common"
	"cafe/src/config"
	"cafe/src/db"
	"cafe/src/lib"
	"cafe/src/models"
	"cafe/src/types"
	"context"
	"log"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func InitDb() *gorm.DB {
	db := db.GetDb()

	if err := Migrate(db); err != nil {
		log.Fatalf("error migration: %s", err.Error())
	}
	if err := SeedRoles(db); err != nil {
		log.Fatalf("error seeding roles: %s", err.Error())
	}

	return db
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(models.All()...)
}

// SeedRoles makes sure every default role exists. Safe to run on every boot.
func SeedRoles(db *gorm.DB) error {
	roles := make([]models.Role, 0, len(types.DefaultRoles))
	for _, name := range types.DefaultRoles {
		roles = append(roles, models.Role{Name: name})
	}
	return db.
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(&roles).
		Error
}

func InitScheduler() {
	sched, err := lib.GetScheduler()
	if err != nil {
		log.Println("An error has occurred. Check logs for info")
		return
	}
	id, err := lib.CreateCronJob("table-status-sweep", config.GetSweepInterval(), common.SweepTableStatuses)
	if err != nil {
		log.Printf("Error scheduling table status sweep: %s\n", err.Error())
		return
	}
	log.Printf("Job ID: table-status-sweep %s\n", *id)
	if store, ok := lib.GetRevocationStore().(*lib.DBRevocationStore); ok {
		if _, err := lib.CreateCronJob("revoked-token-purge", time.Hour, purgeRevokedTokens, store); err != nil {
			log.Printf("Error scheduling token purge: %s\n", err.Error())
		}
	}
	log.Println("Jobs in queue:", len(sched.Jobs()))
	sched.Start()
}

func purgeRevokedTokens(store *lib.DBRevocationStore) {
	n, err := store.PurgeExpired(context.Background())
	if err != nil {
		log.Printf("[TokenPurge] Error purging revoked tokens: %s\n", err.Error())
		return
	}
	if n > 0 {
		log.Printf("[TokenPurge] removed %d expired token(s)\n", n)
	}
}

func StopScheduler() {
	sched, err := lib.GetScheduler()
	if err != nil {
		log.Println("Error retrieving Scheduler. Check logs for info")
		return
	}
	err = sched.Shutdown()
	if err != nil {
		log.Println("An error has occurred while stopping Scheduler. Check logs for info")
		return
	}
}
