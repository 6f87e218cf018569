package main

import (
	"fmt"
	"os"

	"github.com/facebookgo/inject"
	"github.com/facebookgo/startstop"
	flag "github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"

	"github.com/honeycombio/wsample/app"
	"github.com/honeycombio/wsample/config"
	"github.com/honeycombio/wsample/logger"
	"github.com/honeycombio/wsample/metrics"
	"github.com/honeycombio/wsample/sample"
)

// set by the build
var BuildID string
var version string

type Options struct {
	ConfigFile string `short:"c" long:"config" description:"Path to config file" default:"wsample.yaml"`
	Events     int    `short:"n" long:"events" description:"Number of synthetic events to feed through the sampler" default:"10000000"`
	Seed       uint64 `short:"s" long:"seed" description:"Seed for the synthetic event stream; 0 seeds from the clock" default:"0"`
	Version    bool   `short:"v" long:"version" description:"Print version number and exit"`
}

func main() {
	var opts Options
	flagParser := flag.NewParser(&opts, flag.Default)
	if extraArgs, err := flagParser.Parse(); err != nil || len(extraArgs) != 0 {
		fmt.Println("command line parsing error - call with --help for usage")
		os.Exit(1)
	}

	if BuildID == "" {
		version = "dev"
	} else {
		version = "0." + BuildID
	}

	if opts.Version {
		fmt.Println("Version: " + version)
		os.Exit(0)
	}

	c := &config.FileConfig{Path: opts.ConfigFile}
	if err := c.Start(); err != nil {
		fmt.Printf("unable to load config: %v\n", err)
		os.Exit(1)
	}

	a := app.App{
		EventCount: opts.Events,
		Seed:       opts.Seed,
		Version:    version,
	}

	// get desired implementation for each dependency to inject
	lgr, err := logger.GetLoggerImplementation(c)
	if err != nil {
		fmt.Printf("unable to set up logger: %v\n", err)
		os.Exit(1)
	}
	metricsr, err := metrics.GetMetricsImplementation(c)
	if err != nil {
		fmt.Printf("unable to set up metrics: %v\n", err)
		os.Exit(1)
	}
	samplerFactory := &sample.SamplerFactory{}

	// set log level
	logLevel := c.GetLoggingLevel().String()
	if err := lgr.SetLevel(logLevel); err != nil {
		fmt.Printf("unable to set logging level: %v\n", err)
		os.Exit(1)
	}

	var g inject.Graph
	err = g.Provide(
		&inject.Object{Value: c},
		&inject.Object{Value: lgr},
		&inject.Object{Value: metricsr, Name: "metrics"},
		&inject.Object{Value: samplerFactory},
		&inject.Object{Value: &a},
	)
	if err != nil {
		fmt.Printf("failed to provide injection graph. error: %+v\n", err)
		os.Exit(1)
	}
	if err := g.Populate(); err != nil {
		fmt.Printf("failed to populate injection graph. error: %+v\n", err)
		os.Exit(1)
	}

	// the logger provided to startstop must be valid before any service is
	// started, meaning it can't rely on injected configs. make a custom logger
	// just for this step
	ststLogger := logrus.New()
	level, _ := logrus.ParseLevel(logLevel)
	ststLogger.SetLevel(level)

	defer startstop.Stop(g.Objects(), ststLogger)
	if err := startstop.Start(g.Objects(), ststLogger); err != nil {
		fmt.Printf("failed to start injected dependencies. error: %+v\n", err)
		os.Exit(1)
	}

	if err := a.Run(); err != nil {
		fmt.Printf("run failed: %+v\n", err)
		os.Exit(1)
	}
}
