package service

import (
	"context"

	"github.com/geocoder89/eventdesk/internal/auth"
	"github.com/geocoder89/eventdesk/internal/domain/registration"
	"github.com/geocoder89/eventdesk/internal/domain/user"
)

// Audit compares every event's registered count with the ledger.
func (s *Service) Audit(ctx context.Context) (registration.Report, error) {
	var report registration.Report

	err := s.run(ctx, "audit", user.CapAudit, func(ctx context.Context, _ auth.Identity) error {
		var err error
		report, err = s.CheckConsistency(ctx)
		return err
	})
	return report, err
}

// Repair brings both files back in step and returns the drift it fixed.
func (s *Service) Repair(ctx context.Context) (registration.Report, error) {
	var report registration.Report

	err := s.run(ctx, "repair", user.CapAudit, func(ctx context.Context, _ auth.Identity) error {
		var err error
		report, err = s.RepairConsistency(ctx)
		return err
	})
	return report, err
}

// CheckConsistency is the ungated audit used by the operator check tool,
// which runs with direct access to the data files.
func (s *Service) CheckConsistency(ctx context.Context) (registration.Report, error) {
	events, regs, err := s.loadBoth(ctx)
	if err != nil {
		return registration.Report{}, err
	}
	return registration.Audit(events, regs), nil
}

// RepairConsistency is the ungated repair. Nothing is written when the
// files already agree.
func (s *Service) RepairConsistency(ctx context.Context) (registration.Report, error) {
	events, regs, err := s.loadBoth(ctx)
	if err != nil {
		return registration.Report{}, err
	}

	report := registration.Audit(events, regs)
	if report.Consistent() {
		return report, nil
	}

	events, regs = registration.Repair(events, regs)
	if err := s.saveBoth(ctx, events, regs); err != nil {
		return report, err
	}

	s.log.InfoContext(ctx, "repaired registration drift",
		"mismatches", len(report.Mismatches),
		"dangling", len(report.Dangling),
	)
	return report, nil
}
