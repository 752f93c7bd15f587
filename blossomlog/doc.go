// Package blossomlog is a structured-logging hook standing in for the
// original source's compile-time debug flag: matching.Matcher and
// cardinality.Matcher accept a Logger at construction, default to a no-op,
// and behave identically whether or not one is supplied.
//
// FromZap adapts a real *zap.Logger the same way
// lintang-b-s-Navigatorx/pkg/landmark threads one through its preprocessing
// entry point — as an explicit parameter, never a package-global.
package blossomlog
