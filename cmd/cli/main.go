package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"lcoe/internal/config"
	"lcoe/internal/lcoe"
	"lcoe/internal/model"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "compute":
		cmdCompute(os.Args[2:])
	case "defaults":
		cmdDefaults()
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli compute --config examples/scenario.yaml [--ledger results/ledger.csv] [--json]")
	fmt.Println("  cli defaults")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - rates in economics are percentages (tax_rate: 25 means 25%)")
	fmt.Println("  - degradation_rate is a fraction per year (0.01 means 1%)")
}

// jsonResult is the --json output shape.
type jsonResult struct {
	Name              string  `json:"name,omitempty"`
	LCOE              float64 `json:"lcoe"`
	AnnualYield       float64 `json:"annual_yield"`
	LifetimeYears     int     `json:"lifetime_years"`
	DegradationRate   float64 `json:"degradation_rate"`
	DepreciationYears int     `json:"depreciation_years"`
	TotalCost         float64 `json:"total_cost"`
	TotalEnergy       float64 `json:"total_energy"`
	TotalTaxShield    float64 `json:"total_tax_shield"`
}

func cmdCompute(args []string) {
	fs := flag.NewFlagSet("compute", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML scenario")
	ledgerPath := fs.String("ledger", "", "Optional: write the yearly ledger CSV to this path")
	asJSON := fs.Bool("json", false, "Print the result as JSON")
	noValidate := fs.Bool("no-validate", false, "Skip input validation and pass values to the calculator as-is")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	load := config.Load
	if *noValidate {
		load = config.LoadUnchecked
	}
	cfg, err := load(*cfgPath)
	if err != nil {
		log.Fatal().Err(err).Str("config", *cfgPath).Msg("load scenario")
	}

	calc := cfg.Calculation.ToModel()
	res, err := lcoe.Run(cfg.AnnualYield, cfg.Economics.ToModel(), calc)
	if err != nil {
		log.Fatal().Err(err).Msg("compute LCOE")
	}

	if *ledgerPath != "" {
		if err := os.MkdirAll(filepath.Dir(*ledgerPath), 0o755); err != nil {
			log.Fatal().Err(err).Msg("create ledger dir")
		}
		if err := lcoe.WriteLedgerCSVFile(*ledgerPath, res.Ledger); err != nil {
			log.Fatal().Err(err).Msg("write ledger")
		}
		log.Info().Int("rows", len(res.Ledger)).Str("path", *ledgerPath).Msg("wrote ledger")
	}

	if *asJSON {
		out, err := json.MarshalIndent(jsonResult{
			Name:              cfg.Name,
			LCOE:              res.LCOE,
			AnnualYield:       cfg.AnnualYield,
			LifetimeYears:     calc.LifetimeYears,
			DegradationRate:   calc.DegradationRate,
			DepreciationYears: calc.DepreciationYears,
			TotalCost:         res.TotalCost,
			TotalEnergy:       res.TotalEnergy,
			TotalTaxShield:    res.TotalTaxShield,
		}, "", "  ")
		if err != nil {
			log.Fatal().Err(err).Msg("encode result")
		}
		fmt.Println(string(out))
		return
	}

	name := cfg.Name
	if name == "" {
		name = filepath.Base(*cfgPath)
	}
	fmt.Printf("%s: LCOE=%.6f per unit energy (%d years, depreciation %d years, degradation %.2f%%/yr)\n",
		name, res.LCOE, calc.LifetimeYears, calc.DepreciationYears, calc.DegradationRate*100)
	fmt.Printf("Discounted cost=%.4f Discounted energy=%.4f Tax shield=%.4f\n",
		res.TotalCost, res.TotalEnergy, res.TotalTaxShield)
}

func cmdDefaults() {
	d := model.DefaultCalcConfig()
	fmt.Printf("%-20s %v\n", "lifetime_years", d.LifetimeYears)
	fmt.Printf("%-20s %v\n", "degradation_rate", d.DegradationRate)
	fmt.Printf("%-20s %v\n", "depreciation_years", d.DepreciationYears)
}
