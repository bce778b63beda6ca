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

	"github.com/dermatlas/dermatlas-api/store"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("dermatlas")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func splitIDs(s string) []string {
	if s == "" {
		return nil
	}

	ids := make([]string, 0)
	for _, id := range strings.Split(s, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

func main() {
	var purge bool
	var feature string
	var unfeature string
	var dryRun bool

	flag.BoolVar(&purge, "purge", false, "delete records whose state code is not a valid US state")
	flag.StringVar(&feature, "feature", "", "place ids to mark as featured, comma separated")
	flag.StringVar(&unfeature, "unfeature", "", "place ids to unmark as featured, comma separated")
	flag.BoolVar(&dryRun, "dry-run", false, "print planned changes without writing")
	flag.Parse()

	featureIDs := splitIDs(feature)
	unfeatureIDs := splitIDs(unfeature)

	if !purge && len(featureIDs) == 0 && len(unfeatureIDs) == 0 {
		flag.Usage()
		return
	}

	if dryRun {
		if purge {
			fmt.Println("would purge records with invalid state codes")
		}
		for _, id := range featureIDs {
			fmt.Printf("would feature %s\n", id)
		}
		for _, id := range unfeatureIDs {
			fmt.Printf("would unfeature %s\n", id)
		}
		return
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

	if purge {
		removed, err := clinicStore.PurgeInvalidStates()
		if err != nil {
			log.Fatalf("purge failed: %s", err)
		}
		fmt.Printf("purged %d records with invalid state codes\n", removed)
	}

	for _, id := range featureIDs {
		if err := clinicStore.SetFeatured(id, true); err != nil {
			log.Fatalf("feature %s failed: %s", id, err)
		}
		fmt.Printf("featured %s\n", id)
	}

	for _, id := range unfeatureIDs {
		if err := clinicStore.SetFeatured(id, false); err != nil {
			log.Fatalf("unfeature %s failed: %s", id, err)
		}
		fmt.Printf("unfeatured %s\n", id)
	}
}
