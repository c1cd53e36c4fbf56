package healthcheck

import (
	"dq-health-check/feature/healthcheck/model"

	"go.uber.org/zap"
)

// Service runs health checks and logs the outcome.
type Service struct {
	logger *zap.Logger
}

// NewService creates a new health check service.
func NewService(logger *zap.Logger) *Service {
	return &Service{logger: logger}
}

// Analyze runs the pipeline over the given sources and logs a summary.
func (s *Service) Analyze(sources []*model.Source, mainIndex int) (*model.Report, error) {
	report, err := Run(sources, mainIndex)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Health check completed",
		zap.String("main_source", report.MainSource),
		zap.Int("sources", len(sources)),
		zap.Bool("ok", report.OK),
		zap.Int("sources_missing_headers", len(report.MissingHeaders)),
		zap.Bool("rule_count_ok", report.RuleCountOK),
		zap.Int("sources_with_exclusives", len(report.Exclusives)),
		zap.Int("sources_with_mismatches", len(report.Mismatches)),
	)

	return report, nil
}
