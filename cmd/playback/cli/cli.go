/*
Copyright 2026 The nagare media authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/nagare-media/playback/internal/pkg/version"
	"github.com/nagare-media/playback/pkg/config"
	"github.com/nagare-media/playback/pkg/config/v1alpha1"
	"github.com/nagare-media/playback/pkg/event"
	"github.com/nagare-media/playback/pkg/media"
	"github.com/nagare-media/playback/pkg/media/mp4"
	httpserver "github.com/nagare-media/playback/pkg/server/http"
	"github.com/nagare-media/playback/pkg/source"
)

type cli struct {
	configured bool
	configErr  error

	flagSet          *pflag.FlagSet
	printUsageFlag   bool
	printVersionFlag bool
	devModeFlag      bool
	logLevelFlag     string
	configFlag       string
	fileFlag         string
	probeFlag        bool

	logger *zap.SugaredLogger
	viper  *viper.Viper
}

// New creates a new command instance
func New() *cli {
	c := &cli{
		configured: false,
		flagSet:    pflag.NewFlagSet("playback", pflag.ContinueOnError),
		viper:      viper.New(),
	}

	c.flagSet.BoolVarP(&c.printUsageFlag, "help", "h", false, "Print this help message and exit")
	c.flagSet.BoolVarP(&c.printVersionFlag, "version", "V", false, "Print the version number and exit")
	c.flagSet.BoolVar(&c.devModeFlag, "dev", false, "Run in developer mode")
	c.flagSet.StringVarP(&c.logLevelFlag, "log-level", "l", "", "Log level (\"debug\", \"info\", \"warn\", \"error\", \"panic\", \"fatal\")")
	c.flagSet.StringVarP(&c.configFlag, "config", "c", "", "Path to the config file")
	c.flagSet.StringVarP(&c.fileFlag, "file", "f", "", "Resolve a single source description file and exit")
	c.flagSet.BoolVar(&c.probeFlag, "probe", false, "Probe local MP4 sources after resolving (with -f)")

	c.viper.SetConfigName("config")
	c.viper.SetConfigType("yaml")
	c.viper.AddConfigPath(".")
	c.viper.AddConfigPath("/etc/nagare-media/playback/")

	return c
}

// ParseArgs given to this command
func (c *cli) ParseArgs(args []string) {
	c.configured = true

	c.configErr = c.flagSet.Parse(args)
	if c.configErr != nil {
		return
	}

	ll := zap.NewAtomicLevel()
	if c.logLevelFlag == "" {
		if c.devModeFlag {
			c.logLevelFlag = "debug"
		} else {
			c.logLevelFlag = "info"
		}
	}
	c.configErr = ll.UnmarshalText([]byte(c.logLevelFlag))
	if c.configErr != nil {
		return
	}

	var l *zap.Logger
	l, c.configErr = newLoggerConfig(ll, c.devModeFlag).Build()
	if c.configErr != nil {
		return
	}
	c.logger = l.Sugar()
}

// Execute this command
func (c *cli) Execute(ctx context.Context) error {
	if !c.configured {
		c.configErr = errors.New("playback command not configured")
	}

	if c.configErr != nil {
		fmt.Println(c.configErr)
		fmt.Println()
		c.PrintUsage()
		return c.configErr
	}

	if c.printUsageFlag {
		c.PrintUsage()
		return nil
	}

	if c.printVersionFlag {
		_ = version.Playback.Write(os.Stdout)
		return nil
	}

	log := c.logger
	defer func() {
		_ = c.logger.Sync()
	}()

	if c.fileFlag != "" {
		return c.resolveFile(log)
	}

	log.Infow("start nagare media playback", "version", version.Playback.String())

	cfg, err := c.readConfig(log, true)
	if err != nil {
		return err
	}

	// handle termination
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		cancel()
	}()

	events := event.NewStream()
	events.Start(ctx)
	sub := events.Sub()
	go func() {
		for e := range sub {
			log.Debugw("resolution event", "type", fmt.Sprintf("%T", e), "event", e)
		}
	}()

	resolver := source.NewResolver(cfg.Features, nil, log)
	srv, err := httpserver.New(*cfg, resolver, events, log)
	if err != nil {
		log.Errorw("initializing server failed", "error", err)
		return err
	}

	return srv.Listen(ctx)
}

// readConfig loads the service configuration. In one-shot mode a missing
// config file is tolerated and all ad integrations are enabled so that full
// descriptions can be validated.
func (c *cli) readConfig(log *zap.SugaredLogger, required bool) (*v1alpha1.Config, error) {
	var err error
	if c.configFlag == "" {
		log.Debug("search for nagare media playback config")
		err = c.viper.ReadInConfig()
	} else {
		log.Debugw("open config file", "config", c.configFlag)

		var f *os.File
		f, err = os.Open(c.configFlag)
		if err != nil {
			log.Errorw("opening config file failed", "error", err)
			return nil, err
		}

		err = c.viper.ReadConfig(f)
	}
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !required && errors.As(err, &notFound) {
			return &v1alpha1.Config{
				Features: v1alpha1.Features{GoogleDAI: true, GoogleIMA: true},
			}, nil
		}
		log.Errorw("reading config failed", "error", err)
		return nil, err
	}

	cfg := &v1alpha1.Config{}
	if err = config.UnmarshalExact(c.viper, cfg); err != nil {
		log.Errorw("unmarshaling config failed", "error", err)
		return nil, err
	}
	return cfg, nil
}

// resolveFile resolves one source description file and prints the result.
func (c *cli) resolveFile(log *zap.SugaredLogger) error {
	cfg, err := c.readConfig(log, false)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(c.fileFlag)
	if err != nil {
		log.Errorw("reading source description failed", "error", err)
		return err
	}

	var raw any
	switch filepath.Ext(c.fileFlag) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	default:
		err = json.Unmarshal(data, &raw)
	}
	if err != nil {
		log.Errorw("parsing source description failed", "error", err)
		return err
	}

	resolver := source.NewResolver(cfg.Features, nil, log)
	desc, err := resolver.Resolve(raw)
	if err != nil {
		log.Errorw("resolving source description failed", "error", err)
		return err
	}

	out, err := json.MarshalIndent(desc, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))

	if c.probeFlag {
		c.probeSources(log, desc)
	}
	return nil
}

// probeSources runs quick ISO BMFF checks on local MP4 sources.
func (c *cli) probeSources(log *zap.SugaredLogger, desc *v1alpha1.SourceDescription) {
	for _, s := range desc.Sources {
		if s.Type != media.MP4ContentType {
			continue
		}
		if strings.Contains(s.Src, "://") {
			log.Debugw("skipping remote source", "src", s.Src)
			continue
		}

		info, err := mp4.ProbeFile(s.Src)
		if err != nil {
			log.Warnw("probing source failed", "src", s.Src, "error", err)
			continue
		}
		log.Infow("probed source",
			"src", s.Src,
			"majorBrand", info.MajorBrand,
			"fragmented", info.Fragmented,
			"duration", info.Duration,
			"tracks", len(info.Tracks),
		)
	}
}

// PrintUsage of this command
func (c *cli) PrintUsage() {
	fmt.Println("Usage: playback [options]")
	c.flagSet.PrintDefaults()
}

func newLoggerConfig(level zap.AtomicLevel, development bool) zap.Config {
	var levelEncoder zapcore.LevelEncoder
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		levelEncoder = zapcore.LowercaseColorLevelEncoder
	} else {
		levelEncoder = zapcore.LowercaseLevelEncoder
	}

	return zap.Config{
		Level:             level,
		Development:       development,
		DisableStacktrace: true,
		Sampling: &zap.SamplingConfig{
			Initial:    100,
			Thereafter: 100,
		},
		Encoding: "console",
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey:    "M",
			LevelKey:      "L",
			TimeKey:       "T",
			NameKey:       "N",
			CallerKey:     "C",
			FunctionKey:   zapcore.OmitKey,
			StacktraceKey: "S",

			EncodeLevel:    levelEncoder,
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
}
