package discord

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
)

// Bot represents the Discord bot
type Bot struct {
	Session  *discordgo.Session
	Client   *APIClient
	AppID    string
	Registry *CommandRegistry
	Events   *SSEClient

	notifier *SSENotifier
	cancel   context.CancelFunc
}

// Config holds the bot configuration
type Config struct {
	Token  string
	AppID  string
	APIURL string

	// NotificationChannelID receives big win and achievement announcements.
	// Empty disables the event stream.
	NotificationChannelID string
}

// New creates a new Discord bot
func New(cfg Config) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}

	bot := &Bot{
		Session:  s,
		Client:   NewAPIClient(cfg.APIURL),
		AppID:    cfg.AppID,
		Registry: NewCommandRegistry(),
	}

	if cfg.NotificationChannelID != "" {
		bot.Events = NewSSEClient(cfg.APIURL, NotifiedEventTypes())
		bot.notifier = NewSSENotifier(s, cfg.NotificationChannelID)
		bot.notifier.RegisterHandlers(bot.Events)
	}

	return bot, nil
}

// Start starts the bot
func (b *Bot) Start() error {
	b.Session.AddHandler(b.ready)
	b.Session.AddHandler(b.interactionCreate)

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}

	if b.Events != nil {
		ctx, cancel := context.WithCancel(context.Background())
		b.cancel = cancel
		b.Events.Start(ctx)
	}

	slog.Info("Discord bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop stops the bot
func (b *Bot) Stop() {
	if b.Events != nil {
		if b.cancel != nil {
			b.cancel()
		}
		b.Events.Stop()
	}
	if err := b.Session.Close(); err != nil {
		slog.Warn("Failed to close Discord session", "error", err)
	}
}

// Run runs the bot until a signal is received
func (b *Bot) Run() error {
	if err := b.Start(); err != nil {
		return err
	}
	defer b.Stop()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	return nil
}

func (b *Bot) ready(s *discordgo.Session, r *discordgo.Ready) {
	slog.Info("Bot is ready", "user", r.User.Username)
}

func (b *Bot) interactionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if b.Registry != nil {
		b.Registry.Handle(s, i, b.Client)
	}
}
