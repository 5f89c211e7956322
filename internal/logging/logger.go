// Package logging builds the zap logger used by the debug-generator CLI.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Standard field names for structured logging.
const (
	FieldPackage = "package"
	FieldType    = "type"
	FieldField   = "field"
	FieldFile    = "file"
	FieldCode    = "code"
	FieldCount   = "count"
)

// Verbosity levels for the -v flag count.
const (
	VerbosityUser  = 0 // No flags: warnings and errors only
	VerbosityInfo  = 1 // -v: + generated files
	VerbosityDebug = 2 // -vv: + per type planning details
)

// VerbosityToLevel maps verbosity flags (-v, -vv) to zap log levels.
func VerbosityToLevel(verbosity int) zapcore.Level {
	switch {
	case verbosity <= VerbosityUser:
		return zapcore.WarnLevel
	case verbosity == VerbosityInfo:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

// New creates a console logger writing to w at the level selected by
// verbosity.
func New(verbosity int, w zapcore.WriteSyncer) *zap.Logger {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = ""
	encoderConfig.CallerKey = ""
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		w,
		VerbosityToLevel(verbosity),
	)

	return zap.New(core).Named("debug-generator")
}
