package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoPowerDNS-Admin/go-randstr/internal/logger"
)

func TestLogger(t *testing.T) {
	type testCase struct {
		name             string
		cfg              logger.Log
		shouldHaveOutPut bool
		outPutIsJSON     bool
	}

	testCases := []testCase{
		{
			name: "no logger enabled log level not set",
			cfg: logger.Log{
				LogLevel:    "",
				ServiceName: "test",
				AppName:     "test",
			},
			shouldHaveOutPut: false,
		},
		{
			name: "console enabled log level info",
			cfg: logger.Log{
				LogLevel:    "info",
				ServiceName: "test",
				AppName:     "test",
				Console:     logger.Console{Enabled: true},
			},
			shouldHaveOutPut: true,
		},
		{
			name: "console enabled console writer enabled trace",
			cfg: logger.Log{
				LogLevel:    "trace",
				ServiceName: "test",
				AppName:     "test",
				Console:     logger.Console{Enabled: true, UseConsoleWriter: true},
			},
			shouldHaveOutPut: true,
		},
		{
			name: "console enabled console writer disabled info expect json",
			cfg: logger.Log{
				LogLevel:    "info",
				ServiceName: "test",
				AppName:     "test",
				Console:     logger.Console{Enabled: true, UseConsoleWriter: false},
			},
			shouldHaveOutPut: true,
			outPutIsJSON:     true,
		},
		{
			name: "console enabled trace expect json stack and caller",
			cfg: logger.Log{
				LogLevel:     "trace",
				ServiceName:  "test",
				AppName:      "test",
				ReportCaller: true,
				Console:      logger.Console{Enabled: true, UseConsoleWriter: false},
			},
			shouldHaveOutPut: true,
			outPutIsJSON:     true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := testLoggerConfig(t, tc.cfg)
			t.Logf("out: %s", out)

			switch {
			case out == "" && tc.shouldHaveOutPut:
				t.Errorf("expected console output but got none")
			case out != "" && !tc.shouldHaveOutPut:
				t.Errorf("expected no console output but got: %s", out)
			case tc.outPutIsJSON:
				type line struct {
					Level   string `json:"level"`
					App     string `json:"app"`
					Message string `json:"message"`
				}

				for _, outLine := range strings.Split(out, "\n") {
					if outLine == "" {
						continue
					}

					var l line
					if err := json.Unmarshal([]byte(outLine), &l); err != nil {
						t.Errorf("expected json output but got: %s", outLine)

						continue
					}

					assert.Equal(t, "test", l.App)
				}
			}
		})
	}
}

func TestInitErrors(t *testing.T) {
	reg := prometheus.NewRegistry()

	err := logger.Init(logger.Log{LogLevel: "loud", ServiceName: "s", AppName: "a"}, reg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loglevel loud is not supported")

	err = logger.Init(logger.Log{LogLevel: "info", AppName: "a"}, reg)
	require.ErrorIs(t, err, logger.ErrServiceNameIsEmpty)

	err = logger.Init(logger.Log{LogLevel: "info", ServiceName: "s"}, reg)
	require.ErrorIs(t, err, logger.ErrAppNameIsEmpty)
}

func TestPrometheusHookCountsLevels(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	reg := prometheus.NewRegistry()

	hook, err := logger.NewPrometheusHook("test", reg)
	require.NoError(t, err)

	l := zerolog.New(io.Discard).Hook(hook)
	l.Info().Msg("one")
	l.Info().Msg("two")
	l.Warn().Msg("three")
	l.Log().Msg("no level is not counted")

	assert.Equal(t, 2, testutil.CollectAndCount(reg, "randstr_log_statements_total"))

	// a second hook on the same registry reuses the counter
	again, err := logger.NewPrometheusHook("test", reg)
	require.NoError(t, err)

	l2 := zerolog.New(io.Discard).Hook(again)
	l2.Info().Msg("four")

	expected := `
# HELP randstr_log_statements_total Number of log statements, differentiated by log level.
# TYPE randstr_log_statements_total counter
randstr_log_statements_total{level="info",service="test"} 3
randstr_log_statements_total{level="warn",service="test"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "randstr_log_statements_total"))
}

func TestLevelWriter(t *testing.T) {
	var info, warn, errs, trace bytes.Buffer

	lw := &logger.LevelWriter{InfoWriter: &info, WarnWriter: &warn, ErrorWriter: &errs, TraceWriter: &trace}

	for _, l := range []zerolog.Level{
		zerolog.DebugLevel, zerolog.InfoLevel, zerolog.WarnLevel,
		zerolog.ErrorLevel, zerolog.FatalLevel, zerolog.TraceLevel, zerolog.Disabled,
	} {
		_, err := lw.WriteLevel(l, []byte(l.String()+";"))
		require.NoError(t, err)
	}

	assert.Equal(t, "debug;info;", info.String())
	assert.Equal(t, "warn;", warn.String())
	assert.Equal(t, "error;fatal;", errs.String())
	assert.Equal(t, "trace;", trace.String())
}

func TestFileLogging(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	err := logger.Init(logger.Log{
		LogLevel:    "info",
		ServiceName: "test",
		AppName:     "test",
		File: logger.LogFile{
			Enabled:  true,
			Path:     dir,
			ErrorLog: "error.log",
			InfoLog:  "info.log",
			TraceLog: "trace.log",
			WarnLog:  "warn.log",
		},
	}, prometheus.NewRegistry())
	require.NoError(t, err)

	log.Info().Msg("generated")
	log.Error().Err(alwaysErrFunc()).Msg("failed")

	infoLog, err := os.ReadFile(filepath.Join(dir, "info.log"))
	require.NoError(t, err)
	assert.Contains(t, string(infoLog), "generated")
	assert.NotContains(t, string(infoLog), "failed")

	errorLog, err := os.ReadFile(filepath.Join(dir, "error.log"))
	require.NoError(t, err)
	assert.Contains(t, string(errorLog), "a test error")
}

func alwaysErrFunc() error {
	return errors.New("a test error") //nolint:goerr113
}

func testLoggerConfig(t *testing.T, cfg logger.Log) string {
	t.Helper()
	// keep default std err
	stderr := os.Stderr

	// capture stderr
	r, w, _ := os.Pipe()
	os.Stderr = w

	err := logger.Init(cfg, prometheus.NewRegistry())
	if err != nil {
		t.Error(err)
	}

	log.Info().Msg("this info message should be seen...")
	log.Error().Err(alwaysErrFunc()).Msg("this err message should be seen...")
	log.Trace().Err(alwaysErrFunc()).Msg("this trace message should be seen...")

	outC := make(chan string)
	// copy the output in a separate goroutine so printing can't block indefinitely
	go func() {
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, r); err != nil {
			t.Error(err)
		}
		outC <- buf.String()
	}()

	// back to normal state
	_ = w.Close()
	os.Stderr = stderr // restoring the real stderr
	out := <-outC

	return out
}
