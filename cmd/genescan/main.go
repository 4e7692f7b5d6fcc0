package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kiltia/genescan"
	"github.com/kiltia/genescan/config"
	"github.com/kiltia/genescan/pkg/log"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading configuration: %v\n", err)
		os.Exit(1)
	}
	log.Init(cfg.Log)

	inputPath, err := promptInputPath()
	if err != nil {
		zap.S().Fatalw("reading input path", "error", err)
	}

	ctx, cancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer cancel()

	if _, err := genescan.ProcessGeneList(ctx, cfg, inputPath); err != nil {
		// Contact-configuration problems carry remediation text for the
		// operator; print them plainly and produce no output file.
		if errors.Is(err, config.ErrContactConfigMissing) ||
			errors.Is(err, config.ErrContactEmailMissing) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		zap.S().Fatalw("processing gene list", "error", err)
	}
}
