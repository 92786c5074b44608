package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/kapu/brandlens-go/internal/app"
	"github.com/kapu/brandlens-go/internal/card"
	"github.com/kapu/brandlens-go/internal/config"
	"github.com/kapu/brandlens-go/internal/constants"
	"github.com/kapu/brandlens-go/internal/service"
	"github.com/kapu/brandlens-go/internal/util"
	"go.uber.org/zap"
)

func main() {
	brandID := flag.String("brand", "", "brand ID to render")
	describe := flag.String("describe", "", "update the brand description via the API and exit")
	flag.Parse()

	if *brandID == "" {
		fmt.Fprintln(os.Stderr, "usage: dashboard -brand <brand-id> [-describe <text>]")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := util.NewLogger(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if *describe != "" {
		client := service.NewBrandClient(cfg.API.BaseURL, &http.Client{
			Timeout: constants.APIConfig.RequestTimeout,
		}, logger)

		resp, err := client.UpdateDescription(ctx, *brandID, *describe)
		if err != nil {
			logger.Error("Failed to update brand description",
				zap.String("brand_id", *brandID),
				zap.Error(err),
			)
			os.Exit(1)
		}
		fmt.Println(resp.Message)
		return
	}

	container, err := app.Build(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to assemble application services", zap.Error(err))
		os.Exit(1)
	}
	defer container.Close()

	report, err := container.Reports.GetReport(ctx, *brandID)
	if err != nil {
		logger.Error("Failed to load report", zap.String("brand_id", *brandID), zap.Error(err))
		os.Exit(1)
	}
	if report == nil {
		fmt.Fprintf(os.Stderr, "Brand %q not found\n", *brandID)
		os.Exit(1)
	}

	reach := card.NewBrandReachCard(report.Personas, report.Topics)
	models := card.NewModelVisibilityCard(report.Models)
	sources := card.NewSourcesCard(report.TopSources, report.SourceTypes)
	matrix := card.NewTopicVisibilityMatrix(report.MatrixPersonas, report.MatrixTopics, report.MatrixCells)

	brandName := util.TruncateString(report.BrandName, constants.StringLimits.BrandName)
	fmt.Printf("Visibility report for %s\n\n", brandName)
	fmt.Println(reach.Render())
	fmt.Println()
	fmt.Println(models.Render())
	fmt.Println()
	fmt.Println(sources.Render())
	if max := report.MaxSourceCount(); max > 0 {
		fmt.Printf("Peak mentions: %d per domain, %d per category\n", max, report.MaxTypeCount())
	}
	fmt.Println()
	fmt.Println(matrix.Render())
}
