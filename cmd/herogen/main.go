// Package main provides the herogen binary: it loads the hero-creation
// content tables, assembles heroes, and prints them as YAML.
package main

import (
	"flag"
	"log"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/heroforge/internal/config"
	"github.com/cory-johannsen/heroforge/internal/game/dice"
	"github.com/cory-johannsen/heroforge/internal/game/hero"
	"github.com/cory-johannsen/heroforge/internal/game/ruleset"
	"github.com/cory-johannsen/heroforge/internal/observability"
)

func main() {
	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	classesDir := flag.String("classes-dir", "", "directory of class YAML files (overrides config)")
	specsDir := flag.String("specs-dir", "", "directory of specialization YAML files (overrides config)")
	bloodlinesFile := flag.String("bloodlines", "", "bloodline table YAML file (overrides config)")
	talentsFile := flag.String("talents", "", "talent table YAML file (overrides config)")
	classID := flag.String("class", "", "class id of the hero to create")
	specID := flag.String("spec", "", "specialization of the hero to create")
	level := flag.Int("level", 1, "starting level")
	bloodlineID := flag.String("bloodline", "", "bloodline id; empty picks one at random")
	count := flag.Int("count", 1, "number of heroes to create")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	applyOverrides(&cfg, *classesDir, *specsDir, *bloodlinesFile, *talentsFile)

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	if *classID == "" || *specID == "" {
		logger.Fatal("both -class and -spec are required")
	}

	lib := ruleset.NewLibrary()
	classes, err := ruleset.LoadClasses(cfg.Content.ClassesDir)
	if err != nil {
		logger.Fatal("loading classes", zap.Error(err))
	}
	lib.SetClasses(classes)

	specs, err := ruleset.LoadSpecializations(cfg.Content.SpecsDir)
	if err != nil {
		logger.Fatal("loading specializations", zap.Error(err))
	}
	lib.SetSpecializations(specs)

	bloodlines, err := ruleset.LoadBloodlines(cfg.Content.BloodlinesFile)
	if err != nil {
		logger.Fatal("loading bloodlines", zap.Error(err))
	}
	lib.SetBloodlines(bloodlines)

	talents, err := ruleset.LoadTalentTrees(cfg.Content.TalentsFile)
	if err != nil {
		logger.Fatal("loading talent trees", zap.Error(err))
	}
	lib.SetTalentTrees(talents)

	defaults, err := ruleset.LoadWorldDefaults(cfg.Content.WorldFile)
	if err != nil {
		logger.Fatal("loading world defaults", zap.Error(err))
	}

	logger.Info("content loaded",
		zap.Int("classes", len(classes)),
		zap.Int("specializations", len(specs)),
		zap.Int("bloodlines", len(bloodlines)),
	)

	reporter := observability.NewReporter(logger)
	factory := hero.NewFactory(lib, dice.NewCryptoSource(), reporter, logger,
		hero.StatBlock(defaults))
	factory.SetTableSource(ruleset.DirSource{
		ClassesDir: cfg.Content.ClassesDir,
		SpecsDir:   cfg.Content.SpecsDir,
	})

	enc := yaml.NewEncoder(os.Stdout)
	defer enc.Close()
	for i := 0; i < *count; i++ {
		h := factory.CreateEntity(*classID, *specID, *level, *bloodlineID)
		if h == nil {
			os.Exit(1)
		}
		if err := enc.Encode(h); err != nil {
			logger.Fatal("encoding hero", zap.Error(err))
		}
	}
}

// applyOverrides replaces config content paths with non-empty flag
// values.
func applyOverrides(cfg *config.Config, classesDir, specsDir, bloodlinesFile, talentsFile string) {
	if classesDir != "" {
		cfg.Content.ClassesDir = classesDir
	}
	if specsDir != "" {
		cfg.Content.SpecsDir = specsDir
	}
	if bloodlinesFile != "" {
		cfg.Content.BloodlinesFile = bloodlinesFile
	}
	if talentsFile != "" {
		cfg.Content.TalentsFile = talentsFile
	}
}
