package discord

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/IdleRealms_Go/internal/domain"
	"github.com/osse101/IdleRealms_Go/internal/event"
)

const (
	colorGold  = 0xFFD700
	colorGreen = 0x2ecc71

	footerAfk    = "AFK Adventures"
	footerMarket = "Marketplace"

	logMsgNotificationSent  = "Discord notification sent"
	logMsgNotificationError = "Failed to send Discord notification"
)

// EmbedSender is the part of *discordgo.Session the notifier uses
type EmbedSender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// ItemNamer resolves item names for announcements
type ItemNamer interface {
	GetItem(ctx context.Context, itemID int) (*domain.Item, error)
}

// Notifier announces finished AFK sessions and market sales in one channel
type Notifier struct {
	sender    EmbedSender
	channelID string
	items     ItemNamer
}

// NewSession creates a REST-only session; no gateway connection is opened
func NewSession(token string) (*discordgo.Session, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}
	return s, nil
}

func NewNotifier(sender EmbedSender, channelID string, items ItemNamer) *Notifier {
	return &Notifier{sender: sender, channelID: channelID, items: items}
}

// Register subscribes the notifier to the events it announces
func (n *Notifier) Register(bus event.Bus) {
	bus.Subscribe(event.AfkSessionCompleted, n.handleAfkCompleted)
	bus.Subscribe(event.ListingSold, n.handleListingSold)
}

func (n *Notifier) handleAfkCompleted(ctx context.Context, evt event.Event) error {
	p, err := event.DecodePayload[event.AfkSessionCompletedPayloadV1](evt.Payload)
	if err != nil {
		slog.Warn(logMsgNotificationError, "error", err, "event_type", evt.Type)
		return nil
	}

	loot := "nothing this time"
	if len(p.Items) > 0 {
		totals := make(map[int]int)
		var order []int
		for _, st := range p.Items {
			if _, seen := totals[st.ItemID]; !seen {
				order = append(order, st.ItemID)
			}
			totals[st.ItemID] += st.Quantity
		}
		var b strings.Builder
		for _, id := range order {
			fmt.Fprintf(&b, "%d× %s\n", totals[id], n.itemName(ctx, id))
		}
		loot = b.String()
	}

	embed := &discordgo.MessageEmbed{
		Title:       "Adventurer Returns!",
		Description: fmt.Sprintf("Character #%d is back from %s.", p.CharacterID, cases.Title(language.English).String(p.Realm)),
		Color:       colorGold,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Experience", Value: fmt.Sprintf("%d", p.ExperienceGained), Inline: true},
			{Name: "Loot", Value: loot, Inline: false},
		},
		Timestamp: time.Now().Format(time.RFC3339),
		Footer:    &discordgo.MessageEmbedFooter{Text: footerAfk},
	}
	return n.send(evt.Type, embed)
}

func (n *Notifier) handleListingSold(ctx context.Context, evt event.Event) error {
	p, err := event.DecodePayload[event.ListingSoldPayloadV1](evt.Payload)
	if err != nil {
		slog.Warn(logMsgNotificationError, "error", err, "event_type", evt.Type)
		return nil
	}

	embed := &discordgo.MessageEmbed{
		Title:       "Market Sale",
		Description: fmt.Sprintf("%d× **%s** sold for %s gold.", p.Quantity, n.itemName(ctx, p.ItemID), p.TotalPrice),
		Color:       colorGreen,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Listing", Value: fmt.Sprintf("#%d", p.ListingID), Inline: true},
			{Name: "Seller", Value: fmt.Sprintf("#%d", p.SellerID), Inline: true},
			{Name: "Buyer", Value: fmt.Sprintf("#%d", p.BuyerID), Inline: true},
		},
		Timestamp: time.Now().Format(time.RFC3339),
		Footer:    &discordgo.MessageEmbedFooter{Text: footerMarket},
	}
	return n.send(evt.Type, embed)
}

func (n *Notifier) itemName(ctx context.Context, itemID int) string {
	if n.items != nil {
		if it, err := n.items.GetItem(ctx, itemID); err == nil && it != nil {
			return it.Name
		}
	}
	return fmt.Sprintf("item #%d", itemID)
}

func (n *Notifier) send(t event.Type, embed *discordgo.MessageEmbed) error {
	if n.channelID == "" {
		return nil
	}
	if _, err := n.sender.ChannelMessageSendEmbed(n.channelID, embed); err != nil {
		slog.Error(logMsgNotificationError, "error", err, "event_type", t)
		return err
	}
	slog.Info(logMsgNotificationSent, "event_type", t)
	return nil
}
