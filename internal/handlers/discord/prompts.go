package discord

import (
	"context"
	"strings"
	"time"

	"github.com/KirkDiggler/noobcogs/internal/common/timeout"
	"github.com/KirkDiggler/noobcogs/internal/common/uuid"
	"github.com/bwmarrin/discordgo"
)

const (
	confirmPrefix  = "confirm:"
	confirmYes     = "confirm:yes:"
	confirmNo      = "confirm:no:"
	confirmTimeout = 30 * time.Second
)

// ConfirmAction runs once the invoker confirms and returns the text to show
type ConfirmAction func(ctx context.Context) (string, error)

type pendingConfirm struct {
	userID string
	action ConfirmAction
}

// prompts keeps the Yes/No questions waiting for an answer
type prompts struct {
	pending  *Registry[*pendingConfirm]
	timeouts *timeout.Scheduler
	uuid     uuid.UUID
}

func newPrompts(ids uuid.UUID, timeouts *timeout.Scheduler) *prompts {
	return &prompts{
		pending:  NewRegistry[*pendingConfirm](),
		timeouts: timeouts,
		uuid:     ids,
	}
}

func (p *prompts) ask(ctx context.Context, r *Request, question string, action ConfirmAction) error {
	id := p.uuid.NewUUID()
	p.pending.TryAcquire(id, &pendingConfirm{userID: r.UserID(), action: action})
	p.timeouts.Schedule(id, confirmTimeout, func() {
		p.pending.Release(id)
	})

	return r.Reply(ctx, &Reply{
		Content:   question,
		Ephemeral: true,
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{Label: "Yes", Style: discordgo.SuccessButton, CustomID: confirmYes + id},
					discordgo.Button{Label: "No", Style: discordgo.DangerButton, CustomID: confirmNo + id},
				},
			},
		},
	})
}

func (p *prompts) handle(ctx context.Context, r *Request) error {
	customID := r.Interaction.MessageComponentData().CustomID

	var id string
	var yes bool
	switch {
	case strings.HasPrefix(customID, confirmYes):
		id, yes = strings.TrimPrefix(customID, confirmYes), true
	case strings.HasPrefix(customID, confirmNo):
		id = strings.TrimPrefix(customID, confirmNo)
	default:
		return nil
	}

	pending, ok := p.pending.Get(id)
	if !ok {
		return r.Update(ctx, &Reply{Content: ErrPromptExpired.Error()})
	}

	if pending.userID != r.UserID() {
		return ErrNotYourPrompt
	}

	if _, ok := p.pending.Release(id); !ok {
		return r.Update(ctx, &Reply{Content: ErrPromptExpired.Error()})
	}
	p.timeouts.Cancel(id)

	if !yes {
		return r.Update(ctx, &Reply{Content: "Alright, I have cancelled that."})
	}

	content, err := pending.action(ctx)
	if err != nil {
		if msg, ok := userMessage(err); ok {
			return r.Update(ctx, &Reply{Content: msg})
		}
		return err
	}

	return r.Update(ctx, &Reply{Content: content})
}

func (p *prompts) stop() {
	p.timeouts.Stop()
}
