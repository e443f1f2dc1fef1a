//go:build 386 || amd64

package main

import (
	"log/slog"

	"github.com/cwbudde/algo-cpufeat/internal/crosscheck"
	"github.com/cwbudde/algo-cpufeat/x86"
)

func compare(logger *slog.Logger) ([]mismatchRow, string, string, error) {
	host := x86.Host()
	oracles := crosscheck.Oracles()
	var rows []mismatchRow
	for _, m := range crosscheck.Compare(host, oracles...) {
		logger.Warn("detectors disagree", "oracle", m.Oracle, "feature", m.Feature.String(),
			"reported", m.Reported, "detected", m.Detected)
		rows = append(rows, mismatchRow{
			Oracle:   m.Oracle,
			Feature:  m.Feature.String(),
			Reported: m.Reported,
			Detected: m.Detected,
		})
	}
	for _, o := range oracles {
		logger.Debug("compared", "oracle", o.Name, "checks", len(o.Checks))
	}
	vendor, brand := crosscheck.Vendor()
	return rows, vendor, brand, nil
}
