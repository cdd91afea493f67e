package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	config, configPath, err := resolveConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	setupLogger(config.LogLevel, os.Stdout)
	if configPath != "" {
		log.Println("Loaded config", configPath)
	}
	if err := config.validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	config = config.withRunID()
	log.Println("Run id", config.RunID)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var recorder Recorder = discardRecorder{}
	var collection CollectionAPI
	if config.URI != "" {
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.URI))
		if err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		defer client.Disconnect(context.Background())

		collection = &MongoDBCollection{Collection: client.Database(config.Database).Collection(config.Collection)}
		if config.DropCollection {
			if err := collection.Drop(ctx); err != nil {
				log.Fatalf("Failed to drop collection: %v", err)
			}
			log.Println("Collection dropped. Starting new run...")
		}
		recorder = NewCollectionRecorder(collection)
	} else {
		log.Println("No MongoDB uri given. Records are not persisted.")
	}

	reports, err := strategyFor(config).runSequence(ctx, recorder, config)
	if err != nil {
		log.Fatalf("Run failed: %v", err)
	}
	for _, r := range reports {
		log.WithFields(log.Fields{
			"module": r.Module, "ops": r.Operations, "errors": r.Errors,
			"mean": fmt.Sprintf("%.2f", r.OutputMean), "min": r.OutputMin, "max": r.OutputMax,
		}).Info("Run summary")
	}

	if config.Verify {
		verifyCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
		defer cancel()
		failed := false
		for _, module := range config.Modules {
			result, err := verifyRecords(verifyCtx, collection, module, config.RunID)
			if err != nil {
				log.Fatalf("Verification failed: %v", err)
			}
			failed = failed || !result.OK()
		}
		if failed {
			log.Fatalf("Replay verification found mismatches")
		}
	}

	fmt.Println("Processing run completed.")
}

// resolveConfig defines the command line flags on fs and parses args. When
// -config names a YAML file, its values apply and only flags set explicitly on
// the command line override them.
func resolveConfig(fs *flag.FlagSet, args []string) (RunConfig, string, error) {
	var configPath string
	var modules string
	config := defaultConfig()

	fs.StringVar(&configPath, "config", "", "Path to a YAML config file; explicit flags override its values")
	fs.IntVar(&config.Workers, "workers", config.Workers, "Number of concurrent workers, each owning its own module instance")
	fs.IntVar(&config.Count, "count", config.Count, "Total number of operations per module when no duration is set")
	fs.IntVar(&config.Duration, "duration", config.Duration, "Run each module for this many seconds instead of a fixed count")
	fs.IntVar(&config.Seed, "seed", config.Seed, "Base seed; worker i uses seed+i")
	fs.StringVar(&modules, "modules", strings.Join(config.Modules, ","), "Comma separated modules to run: "+strings.Join(ModuleNames(), ", "))
	fs.StringVar(&config.OutputFilePrefix, "output", config.OutputFilePrefix, "Prefix for the per-module CSV result files")
	fs.StringVar(&config.URI, "uri", config.URI, "MongoDB URI; records are only persisted when set")
	fs.StringVar(&config.Database, "db", config.Database, "MongoDB database")
	fs.StringVar(&config.Collection, "collection", config.Collection, "MongoDB collection")
	fs.BoolVar(&config.DropCollection, "drop", config.DropCollection, "Drop the records collection before running")
	fs.BoolVar(&config.Verify, "verify", config.Verify, "Replay stored records after the run and compare outputs")
	fs.StringVar(&config.LogLevel, "log-level", config.LogLevel, "Log level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		return config, configPath, err
	}

	if configPath != "" {
		fileConfig, err := loadConfig(configPath)
		if err != nil {
			return config, configPath, err
		}
		config = mergeFlags(fs, fileConfig, config)
	}
	if configPath == "" || isFlagSet(fs, "modules") {
		config.Modules = splitModules(modules)
	}
	return config, configPath, nil
}

// mergeFlags copies every flag explicitly set on fs from flagConfig over base.
func mergeFlags(fs *flag.FlagSet, base, flagConfig RunConfig) RunConfig {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "workers":
			base.Workers = flagConfig.Workers
		case "count":
			base.Count = flagConfig.Count
		case "duration":
			base.Duration = flagConfig.Duration
		case "seed":
			base.Seed = flagConfig.Seed
		case "output":
			base.OutputFilePrefix = flagConfig.OutputFilePrefix
		case "uri":
			base.URI = flagConfig.URI
		case "db":
			base.Database = flagConfig.Database
		case "collection":
			base.Collection = flagConfig.Collection
		case "drop":
			base.DropCollection = flagConfig.DropCollection
		case "verify":
			base.Verify = flagConfig.Verify
		case "log-level":
			base.LogLevel = flagConfig.LogLevel
		}
	})
	return base
}

func isFlagSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

func splitModules(list string) []string {
	var modules []string
	for _, m := range strings.Split(list, ",") {
		if m = strings.TrimSpace(m); m != "" {
			modules = append(modules, m)
		}
	}
	return modules
}
