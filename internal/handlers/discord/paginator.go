package discord

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/KirkDiggler/noobcogs/internal/common/timeout"
	"github.com/KirkDiggler/noobcogs/internal/common/uuid"
	"github.com/bwmarrin/discordgo"
)

const (
	pagePrefix  = "page:"
	pagePrev    = "page:prev:"
	pageNext    = "page:next:"
	pageTimeout = 2 * time.Minute
)

type pageSet struct {
	mu     sync.Mutex
	userID string
	pages  []*discordgo.MessageEmbed
	index  int
}

// paginator keeps browsable embed pages until they time out
type paginator struct {
	sets     *Registry[*pageSet]
	timeouts *timeout.Scheduler
	uuid     uuid.UUID
}

func newPaginator(ids uuid.UUID, timeouts *timeout.Scheduler) *paginator {
	return &paginator{
		sets:     NewRegistry[*pageSet](),
		timeouts: timeouts,
		uuid:     ids,
	}
}

func (p *paginator) start(ctx context.Context, r *Request, pages []*discordgo.MessageEmbed, ephemeral bool) error {
	if len(pages) == 0 {
		return nil
	}

	if len(pages) == 1 {
		return r.Reply(ctx, &Reply{Embeds: pages, Ephemeral: ephemeral})
	}

	id := p.uuid.NewUUID()
	set := &pageSet{userID: r.UserID(), pages: pages}
	p.sets.TryAcquire(id, set)
	p.timeouts.Schedule(id, pageTimeout, func() {
		p.sets.Release(id)
	})

	return r.Reply(ctx, &Reply{
		Embeds:     []*discordgo.MessageEmbed{pages[0]},
		Components: pageButtons(id, 0, len(pages)),
		Ephemeral:  ephemeral,
	})
}

func (p *paginator) handle(ctx context.Context, r *Request) error {
	customID := r.Interaction.MessageComponentData().CustomID

	var id string
	step := 1
	switch {
	case strings.HasPrefix(customID, pagePrev):
		id, step = strings.TrimPrefix(customID, pagePrev), -1
	case strings.HasPrefix(customID, pageNext):
		id = strings.TrimPrefix(customID, pageNext)
	default:
		return nil
	}

	set, ok := p.sets.Get(id)
	if !ok {
		var embeds []*discordgo.MessageEmbed
		if r.Interaction.Message != nil {
			embeds = r.Interaction.Message.Embeds
		}
		return r.Update(ctx, &Reply{Embeds: embeds})
	}

	if set.userID != r.UserID() {
		return ErrNotYourPrompt
	}

	set.mu.Lock()
	set.index = (set.index + step + len(set.pages)) % len(set.pages)
	index := set.index
	set.mu.Unlock()

	p.timeouts.Schedule(id, pageTimeout, func() {
		p.sets.Release(id)
	})

	return r.Update(ctx, &Reply{
		Embeds:     []*discordgo.MessageEmbed{set.pages[index]},
		Components: pageButtons(id, index, len(set.pages)),
	})
}

func (p *paginator) stop() {
	p.timeouts.Stop()
}

func pageButtons(id string, index, total int) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{Label: "Prev", Style: discordgo.SecondaryButton, CustomID: pagePrev + id},
				discordgo.Button{Label: fmt.Sprintf("%d/%d", index+1, total), Style: discordgo.SecondaryButton, CustomID: "page:count:" + id, Disabled: true},
				discordgo.Button{Label: "Next", Style: discordgo.SecondaryButton, CustomID: pageNext + id},
			},
		},
	}
}

// textPages wraps text pages into embeds titled title with a page footer
func textPages(title string, pages []string, colour int) []*discordgo.MessageEmbed {
	embeds := make([]*discordgo.MessageEmbed, 0, len(pages))
	for i, page := range pages {
		embed := &discordgo.MessageEmbed{
			Title:       title,
			Description: page,
			Color:       colour,
		}
		if len(pages) > 1 {
			embed.Footer = &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("Page (%d/%d)", i+1, len(pages))}
		}
		embeds = append(embeds, embed)
	}
	return embeds
}
