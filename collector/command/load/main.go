package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/dermatlas/dermatlas-api/collector"
	"github.com/dermatlas/dermatlas-api/consts"
	"github.com/dermatlas/dermatlas-api/store"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("dermatlas")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

// Loads per-state snapshot artifacts back into the database, so a collection
// run on one machine can feed a clinic directory on another.
func main() {
	var stateList string
	var snapshotDir string

	flag.StringVar(&stateList, "states", "all", "state codes to load, comma separated, or \"all\"")
	flag.StringVar(&snapshotDir, "snapshot-dir", "./snapshots", "directory holding per-state artifact files")
	flag.Parse()

	states, err := consts.ParseStateSelection(stateList)
	if err != nil {
		log.Fatalf("invalid state selection: %s", err)
	}

	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		log.Panicf("create mongo client with error: %s", err)
	}

	err = mongoClient.Connect(context.Background())
	if nil != err {
		log.Panicf("connect mongo database with error: %s", err)
	}
	defer mongoClient.Disconnect(context.Background())

	clinicStore := store.NewClinicStore(mongoClient, viper.GetString("mongo.database"))

	loaded := 0
	for _, stateCode := range states {
		snapshot, err := collector.ReadSnapshot(snapshotDir, stateCode)
		if err != nil {
			log.WithField("prefix", "load").Warnf("no artifact for %s: %s", stateCode, err)
			continue
		}

		for _, clinic := range snapshot.Clinics {
			if err := clinicStore.UpsertClinic(clinic); err != nil {
				log.Fatalf("upsert %s failed: %s", clinic.PlaceID, err)
			}
			loaded++
		}

		fmt.Printf("%s: %d records\n", stateCode, snapshot.Total)
	}

	fmt.Printf("loaded %d records\n", loaded)
}
