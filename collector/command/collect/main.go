package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"googlemaps.github.io/maps"

	"github.com/dermatlas/dermatlas-api/collector"
	"github.com/dermatlas/dermatlas-api/consts"
	"github.com/dermatlas/dermatlas-api/external/places"
	"github.com/dermatlas/dermatlas-api/geo"
	"github.com/dermatlas/dermatlas-api/store"
)

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("dermatlas")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	var configFile string
	var stateList string
	var snapshotDir string
	var budget int
	var dryRun bool

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.StringVar(&stateList, "states", "all", "state codes to collect, comma separated, or \"all\"")
	flag.StringVar(&snapshotDir, "snapshot-dir", "./snapshots", "directory for per-state artifact files")
	flag.IntVar(&budget, "budget", 0, "hard cap on outbound places requests; 0 means unlimited")
	flag.BoolVar(&dryRun, "dry-run", false, "collect and snapshot without writing to the database")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	states, err := consts.ParseStateSelection(stateList)
	if err != nil {
		log.Fatalf("invalid state selection: %s", err)
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		log.Error(err)
	}

	apiKey := viper.GetString("places.apikey")
	if apiKey == "" {
		log.Fatal("places.apikey is not configured")
	}
	source := places.New(apiKey, viper.GetString("places.url"))
	log.WithField("prefix", "init").Info("Initialized places source")

	var resolver geo.StateResolver
	if mapKey := viper.GetString("map.key"); mapKey != "" {
		mapClient, err := maps.NewClient(maps.WithAPIKey(mapKey))
		if nil != err {
			log.Panicf("create map client with error: %s", err)
		}
		resolver = geo.NewGeocodingStateResolver(mapClient)
		log.WithField("prefix", "init").Info("Initialized geocoding fallback")
	}

	var clinicStore store.ClinicStore
	if !dryRun {
		opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
		opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))
		mongoClient, err := mongo.NewClient(opts)
		if nil != err {
			log.Panicf("create mongo client with error: %s", err)
		}

		err = mongoClient.Connect(context.Background())
		if nil != err {
			log.Panicf("connect mongo database with error: %s", err)
		}
		defer mongoClient.Disconnect(context.Background())

		clinicStore = store.NewClinicStore(mongoClient, viper.GetString("mongo.database"))
	}

	qps := viper.GetFloat64("places.qps")
	if qps <= 0 {
		qps = 1
	}

	runner := collector.NewRunner(collector.Config{
		Source:        source,
		Store:         clinicStore,
		Resolver:      resolver,
		RequestBudget: budget,
		QPS:           qps,
		SnapshotDir:   snapshotDir,
		DryRun:        dryRun,
	})

	start := time.Now()
	summary, runErr := runner.Run(states)

	// The summary is printed even when the run is cut short so partial
	// progress and spend are never lost.
	fmt.Printf("run:        %s\n", summary.RunID)
	fmt.Printf("states:     %s\n", strings.Join(summary.States, ","))
	fmt.Printf("discovered: %d (duplicates %d)\n", summary.Discovered, summary.Duplicates)
	fmt.Printf("accepted:   %d (non-us %d, non-dermatology %d, detail failures %d)\n",
		summary.Accepted, summary.RejectedNonUS, summary.RejectedNonDermatology, summary.DetailFailures)
	fmt.Printf("persisted:  %d\n", summary.Persisted)
	fmt.Printf("requests:   %d (est. cost $%.2f)\n", summary.Requests, summary.CostUSD)
	fmt.Printf("elapsed:    %s\n", time.Since(start).Round(time.Second))

	if runErr != nil {
		log.Error(runErr)
		os.Exit(1)
	}
}
