package consumerWorker

import (
	"context"
	"encoding/json"

	"github.com/wb-go/wbf/zlog"

	"techfest/internal/config"
	"techfest/internal/dto"
	"techfest/internal/mailer"
	"techfest/internal/rabbit"
)

// Reader drains registration-created messages and fans confirmation e-mails
// out to every participant address. Mail failures are logged and the message
// is acked anyway; a registration must never be retried because of SMTP.
type Reader struct {
	RMQ    *rabbit.Client
	cfg    *config.Config
	done   chan struct{}
	cancel context.CancelFunc
}

func NewReader(rmq *rabbit.Client, cfg *config.Config) *Reader {
	return &Reader{
		RMQ:  rmq,
		cfg:  cfg,
		done: make(chan struct{}),
	}
}

func (r *Reader) Start(ctx context.Context) {
	cctx, cancel := context.WithCancel(ctx)
	r.cancel = cancel

	zlog.Logger.Info().Msg("registration email worker started")

	go func() {
		defer close(r.done)

		handler := func(body []byte) error {
			var msg dto.RegistrationCreatedMessage
			if err := json.Unmarshal(body, &msg); err != nil {
				zlog.Logger.Error().
					Err(err).
					Msgf("failed to unmarshal message: %s", string(body))
				return err
			}

			zlog.Logger.Info().
				Str("event", msg.EventName).
				Int("recipients", len(msg.Emails)).
				Msg("received registration-created message")

			for _, email := range msg.Emails {
				if err := mailer.SendConfirmationEmail(
					&zlog.Logger,
					r.cfg,
					msg.EventName,
					msg.TeamName,
					email,
				); err != nil {
					zlog.Logger.Warn().
						Err(err).
						Str("email", email).
						Msg("failed to send confirmation email")
				}
			}
			return nil
		}

		if err := r.RMQ.Consume(handler); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to start consuming")
			return
		}

		<-cctx.Done()
		zlog.Logger.Info().Msg("registration email worker stopped")
	}()
}

func (r *Reader) Stop() {
	if r.cancel != nil {
		r.cancel()
		<-r.done
	}
}
