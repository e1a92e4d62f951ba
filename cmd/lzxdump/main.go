package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"

	"code.cloudfoundry.org/bytefmt"
	"github.com/davecgh/go-spew/spew"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/go-lzx/lzxd/bitstream"
	"github.com/go-lzx/lzxd/config"
	"github.com/go-lzx/lzxd/internal/fieldspec"
	"github.com/go-lzx/lzxd/shared"
)

var (
	cfgFile     string
	printConfig bool
)

var cmd = &cobra.Command{
	Use:          "lzxdump",
	Short:        "replay a read script against LZXD bit-packed data",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		if printConfig {
			spew.Dump(cfg)
			return nil
		}

		if err := cfg.Validate(); err != nil {
			return err
		}

		return run(cfg)
	},
}

func init() {
	def := config.DefaultConfig()
	flags := cmd.Flags()

	flags.StringVar(&cfgFile, "config", "", "config file path")
	flags.BoolVar(&printConfig, "printConfig", false, "print the effective config and exit")

	flags.String("in", def.InputFile, "input file with chunk bytes")
	flags.String("hex", def.HexInput, "inline hex string of chunk bytes instead of a file")
	flags.String("fields", def.Fields, "comma-separated read script: widths 1..16, bit, u16, u32, u24, align")
	flags.Int64("offset", def.Offset, "byte offset into the input")
	flags.Int64("length", def.Length, "byte length of the window (0 = to the end)")
	flags.String("logLevel", def.LogLevel, "log level (debug, info, warn, error)")
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	vip := viper.New()
	if err := vip.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}

	// CLI flags take precedence over the config file.
	if cfgFile != "" {
		vip.SetConfigFile(cfgFile)
		if err := vip.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := config.DefaultConfig()
	if err := vip.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

func newLogger(level string) (*zap.Logger, error) {
	logLevel, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid `logLevel`; expected: debug, info, warn or error, given: %q", level)
	}

	zapCfg := zap.Config{
		Level:    zap.NewAtomicLevelAt(logLevel),
		Encoding: "console",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "T",
			LevelKey:       "L",
			NameKey:        "N",
			MessageKey:     "M",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
		},
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return zapCfg.Build()
}

func loadInput(cfg *config.Config) ([]byte, error) {
	var data []byte
	var err error

	if cfg.InputFile != "" {
		data, err = os.ReadFile(cfg.InputFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read input file: %w", err)
		}
	} else {
		data, err = hex.DecodeString(cfg.HexInput)
		if err != nil {
			return nil, fmt.Errorf("invalid `hex`; expected: an even-length hex string, given: %q", cfg.HexInput)
		}
	}

	if cfg.Offset > int64(len(data)) {
		return nil, fmt.Errorf("invalid `offset`; expected: <= %d, given: %d", len(data), cfg.Offset)
	}
	data = data[cfg.Offset:]

	if cfg.Length > 0 {
		if cfg.Length > int64(len(data)) {
			return nil, fmt.Errorf("invalid `length`; expected: <= %d, given: %d", len(data), cfg.Length)
		}
		data = data[:cfg.Length]
	}

	return data, nil
}

func run(cfg *config.Config) error {
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	fields, err := fieldspec.Parse(cfg.Fields)
	if err != nil {
		return err
	}

	data, err := loadInput(cfg)
	if err != nil {
		return err
	}

	logger.Info("lzxdump starting",
		zap.String("version", shared.Version()),
		zap.String("window", bytefmt.ByteSize(uint64(len(data)))),
		zap.Int("fields", len(fields)),
	)

	bs := bitstream.New(data)
	rows := make([][]string, 0, len(fields))
	var bitsRead int

	for i, f := range fields {
		var value uint64
		var err error

		switch f.Kind {
		case fieldspec.KindBit:
			var v uint16
			v, err = bs.ReadBit()
			value = uint64(v)
		case fieldspec.KindBits:
			var v uint16
			v, err = bs.ReadBits(f.Width)
			value = uint64(v)
		case fieldspec.KindUint16LE:
			var v uint16
			v, err = bs.ReadUint16LE()
			value = uint64(v)
		case fieldspec.KindUint32LE:
			var v uint32
			v, err = bs.ReadUint32LE()
			value = uint64(v)
		case fieldspec.KindUint24BE:
			var v uint32
			v, err = bs.ReadUint24BE()
			value = uint64(v)
		case fieldspec.KindAlign:
			discarded := int(bs.Remaining())
			bs.Align()
			bitsRead += discarded
			rows = append(rows, []string{
				strconv.Itoa(i), f.String(), strconv.Itoa(discarded), "-", "-", "-",
			})
			continue
		}
		if err != nil {
			return fmt.Errorf("decode failed at field %d (%s): %w", i, f, err)
		}

		bitsRead += f.Bits()
		rows = append(rows, []string{
			strconv.Itoa(i),
			f.String(),
			strconv.Itoa(f.Bits()),
			strconv.FormatUint(value, 10),
			fmt.Sprintf("0x%0*X", shared.HexDigits(f.Bits()), value),
			strconv.Itoa(shared.NumBits(value)),
		})
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"#", "field", "bits", "value", "hex", "min bits"})
	table.SetBorder(true)
	table.AppendBulk(rows)
	table.Render()

	logger.Info("stream state after script",
		zap.Int("bitsRead", bitsRead),
		zap.Uint8("remainingBits", bs.Remaining()),
		zap.Bool("empty", bs.IsEmpty()),
	)

	return nil
}

func main() {
	if err := cmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
