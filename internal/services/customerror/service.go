package customerror

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/KirkDiggler/noobcogs/internal/common/clock"
	settingsRepo "github.com/KirkDiggler/noobcogs/internal/repositories/settings"
	"go.uber.org/zap"
)

const cogName = "customerror"

// Setting fields
const (
	fieldMessage          = "error_msg"
	fieldLastErrorCommand = "last_error_command"
	fieldLastError        = "last_error"
	fieldLastErrorAt      = "last_error_at"
)

// service implements the Service interface
type service struct {
	settingsRepo settingsRepo.Repository
	clock        clock.Clock
	logger       *zap.Logger
}

// New creates a new custom error service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.SettingsRepo == nil {
		return nil, ErrNilSettingsRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &service{
		settingsRepo: cfg.SettingsRepo,
		clock:        cfg.Clock,
		logger:       logger,
	}, nil
}

// Report logs the failure, keeps it as the last error and renders the configured message
func (s *service) Report(ctx context.Context, input *ReportInput) (*ReportOutput, error) {
	if input == nil || input.Context == nil {
		return nil, errors.New("input cannot be nil")
	}

	c := input.Context
	errText := ""
	if c.Err != nil {
		errText = c.Err.Error()
	}

	s.logger.Error(fmt.Sprintf("Exception in command '%s'", c.Command),
		zap.String("guild_id", c.GuildID),
		zap.String("channel_id", c.ChannelID),
		zap.String("author_id", c.AuthorID),
		zap.Error(c.Err),
	)

	// the reply still goes out when the store is down
	err := s.settingsRepo.Set(ctx, &settingsRepo.SetInput{
		Scope: settingsRepo.Global(cogName),
		Fields: map[string]string{
			fieldLastErrorCommand: c.Command,
			fieldLastError:        errText,
			fieldLastErrorAt:      strconv.FormatInt(s.clock.Now().Unix(), 10),
		},
	})
	if err != nil {
		s.logger.Warn("failed to store last error", zap.Error(err))
	}

	template, err := s.template(ctx)
	if err != nil {
		s.logger.Warn("failed to get error message, using default", zap.Error(err))
		template = DefaultMessage
	}

	return &ReportOutput{Content: Render(template, c)}, nil
}

// LastError returns the most recently reported failure
func (s *service) LastError(ctx context.Context) (*LastErrorOutput, error) {
	fields, err := s.settingsRepo.GetAll(ctx, &settingsRepo.GetAllInput{Scope: settingsRepo.Global(cogName)})
	if err != nil {
		return nil, fmt.Errorf("failed to get last error: %w", err)
	}

	command, ok := fields[fieldLastErrorCommand]
	if !ok {
		return nil, ErrNoLastError
	}

	out := &LastErrorOutput{
		Command: command,
		Error:   fields[fieldLastError],
	}
	if ts, err := strconv.ParseInt(fields[fieldLastErrorAt], 10, 64); err == nil {
		out.ReportedAt = time.Unix(ts, 0).UTC()
	}

	return out, nil
}

// SetMessage changes the template
func (s *service) SetMessage(ctx context.Context, input *SetMessageInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if input.Message == "" {
		_, err := s.settingsRepo.DeleteFields(ctx, &settingsRepo.DeleteFieldsInput{
			Scope:  settingsRepo.Global(cogName),
			Fields: []string{fieldMessage},
		})
		return err
	}

	return s.settingsRepo.Set(ctx, &settingsRepo.SetInput{
		Scope:  settingsRepo.Global(cogName),
		Fields: map[string]string{fieldMessage: input.Message},
	})
}

// GetSettings returns the template and how it renders
func (s *service) GetSettings(ctx context.Context, input *GetSettingsInput) (*GetSettingsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	template, err := s.template(ctx)
	if err != nil {
		return nil, err
	}

	preview := input.Preview
	if preview != nil && preview.Err == nil {
		p := *preview
		p.Err = ErrTest
		preview = &p
	}

	return &GetSettingsOutput{
		Template: template,
		Preview:  Render(template, preview),
	}, nil
}

// Reset restores the default template and forgets the last error
func (s *service) Reset(ctx context.Context) error {
	return s.settingsRepo.ClearCog(ctx, &settingsRepo.ClearCogInput{Cog: cogName})
}

func (s *service) template(ctx context.Context) (string, error) {
	fields, err := s.settingsRepo.GetAll(ctx, &settingsRepo.GetAllInput{Scope: settingsRepo.Global(cogName)})
	if err != nil {
		return "", fmt.Errorf("failed to get error message: %w", err)
	}

	if msg := fields[fieldMessage]; msg != "" {
		return msg, nil
	}
	return DefaultMessage, nil
}
