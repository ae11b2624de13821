package discord

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/KirkDiggler/noobcogs/internal/common/format"
	"github.com/KirkDiggler/noobcogs/internal/gateway"
	"github.com/KirkDiggler/noobcogs/internal/services/donation"
	"github.com/bwmarrin/discordgo"
)

// DonationCommand handles /donationlogger
type DonationCommand struct {
	donationService donation.Service
}

// NewDonationCommand creates a new donation logger command handler
func NewDonationCommand(donationService donation.Service) *DonationCommand {
	return &DonationCommand{donationService: donationService}
}

func (c *DonationCommand) Name() string {
	return "donationlogger"
}

func (c *DonationCommand) Commands() []*discordgo.ApplicationCommand {
	bank := func(required bool) *discordgo.ApplicationCommandOption {
		return option(discordgo.ApplicationCommandOptionString, "bank", "The bank", required)
	}
	member := func() *discordgo.ApplicationCommandOption {
		return option(discordgo.ApplicationCommandOptionUser, "member", "The member", true)
	}
	amount := func(description string, required bool) *discordgo.ApplicationCommandOption {
		opt := option(discordgo.ApplicationCommandOptionInteger, "amount", description, required)
		minAmount := 0.0
		maxAmount := float64(donation.MaxAmount)
		opt.MinValue = &minAmount
		opt.MaxValue = maxAmount
		return opt
	}
	note := func() *discordgo.ApplicationCommandOption {
		return option(discordgo.ApplicationCommandOptionString, "note", "A note for the log channel", false)
	}
	threshold := func() *discordgo.ApplicationCommandOption {
		return option(discordgo.ApplicationCommandOptionInteger, "threshold", "The balance the role is given at", true)
	}
	role := func() *discordgo.ApplicationCommandOption {
		return option(discordgo.ApplicationCommandOptionRole, "role", "The role", true)
	}

	return []*discordgo.ApplicationCommand{
		{
			Name:         "donationlogger",
			Description:  "Track member donations and reward them with roles",
			DMPermission: guildContext(),
			Options: []*discordgo.ApplicationCommandOption{
				subcommand("setup", "Set up the donation logger (Manage Server)",
					option(discordgo.ApplicationCommandOptionRole, "manager", "A role allowed to manage donations", true),
					option(discordgo.ApplicationCommandOptionString, "banks", "Banks to create, e.g. `Gold 🪙, Silver`", true),
					option(discordgo.ApplicationCommandOptionChannel, "log_channel", "Where donation changes are logged", false),
				),
				subcommand("add", "Add to a member's donation balance",
					member(), bank(true), amount("The amount donated", true), note()),
				subcommand("remove", "Remove from a member's donation balance",
					member(), bank(true), amount("The amount to remove", true), note()),
				subcommand("set", "Set a member's donation balance",
					member(), bank(true), amount("The new balance", true), note()),
				subcommand("balance", "Show a member's donation balance",
					option(discordgo.ApplicationCommandOptionUser, "member", "The member; defaults to you", false), bank(false)),
				subcommand("check", "List donators above or below an amount",
					bank(true),
					withChoices(option(discordgo.ApplicationCommandOptionString, "mode", "Which donators to list", true),
						[]*discordgo.ApplicationCommandOptionChoice{
							{Name: "more", Value: string(donation.CheckMore)},
							{Name: "less", Value: string(donation.CheckLess)},
							{Name: "all", Value: string(donation.CheckAll)},
						}),
					amount("The amount to compare against", false),
				),
				subcommand("leaderboard", "Show the top donators of a bank",
					bank(true),
					option(discordgo.ApplicationCommandOptionInteger, "top", "How many donators to show", false),
					option(discordgo.ApplicationCommandOptionBoolean, "show_left_users", "Include members who left", false),
				),
				subcommand("resetuser", "Reset a member's donation balances",
					member(), bank(false)),
				subcommand("reset", "Reset the donation logger of this server"),
				subcommand("logchannel", "Set the log channel",
					option(discordgo.ApplicationCommandOptionChannel, "channel", "The channel; leave empty to disable logging", false),
				),
				subcommand("showsettings", "Show the donation logger settings"),
				group("bank", "Manage banks",
					subcommand("add", "Create a bank",
						option(discordgo.ApplicationCommandOptionString, "name", "The bank name", true),
						option(discordgo.ApplicationCommandOptionString, "emoji", "The bank emoji", false),
					),
					subcommand("remove", "Delete a bank and its balances", bank(true)),
					subcommand("hidden", "Hide or show a bank",
						bank(true),
						option(discordgo.ApplicationCommandOptionBoolean, "hidden", "Whether the bank is hidden", true),
					),
					subcommand("multiplier", "Change the multiplier of added amounts",
						bank(true),
						option(discordgo.ApplicationCommandOptionNumber, "multiplier", "The multiplier; 0 removes it", true),
					),
					subcommand("emoji", "Change the emoji of a bank",
						bank(true),
						option(discordgo.ApplicationCommandOptionString, "emoji", "The emoji", true),
					),
					subcommand("roleadd", "Give a role at a balance", bank(true), threshold(), role()),
					subcommand("roleremove", "Stop giving a role at a balance", bank(true), threshold(), role()),
				),
				group("managers", "Manage donation manager roles",
					subcommand("add", "Add a manager role", role()),
					subcommand("remove", "Remove a manager role", role()),
				),
			},
		},
	}
}

// HandleCommand processes a donation logger command
func (c *DonationCommand) HandleCommand(ctx context.Context, r *Request) error {
	if err := guildOnly(r); err != nil {
		return err
	}

	actor := donationActor(r)
	guildID := r.GuildID()

	switch r.Sub() {
	case "setup":
		return c.handleSetup(ctx, r, actor)
	case "add", "remove", "set":
		return c.handleChange(ctx, r, actor)
	case "balance":
		memberID := r.Options.ID("member")
		if memberID == "" {
			memberID = r.UserID()
		}
		out, err := c.donationService.Balance(ctx, &donation.BalanceInput{
			GuildID:  guildID,
			Actor:    actor,
			MemberID: memberID,
			Bank:     r.Options.String("bank"),
		})
		if err != nil {
			return err
		}
		return r.Reply(ctx, embedReply(out.Embed, false))
	case "check":
		out, err := c.donationService.Check(ctx, &donation.CheckInput{
			GuildID: guildID,
			Actor:   actor,
			Bank:    r.Options.String("bank"),
			Mode:    donation.CheckMode(r.Options.String("mode")),
			Amount:  r.Options.Int("amount"),
		})
		if err != nil {
			return err
		}
		return r.Paginate(ctx, out.Pages, false)
	case "leaderboard":
		showLeft, _ := r.Options.Bool("show_left_users")
		out, err := c.donationService.Leaderboard(ctx, &donation.LeaderboardInput{
			GuildID:       guildID,
			Actor:         actor,
			Bank:          r.Options.String("bank"),
			Top:           int(r.Options.Int("top")),
			ShowLeftUsers: showLeft,
		})
		if err != nil {
			return err
		}
		return r.Reply(ctx, embedReply(out.Embed, false))
	case "resetuser":
		memberID := r.Options.ID("member")
		bankName := r.Options.String("bank")
		question := fmt.Sprintf("Are you sure you want to reset every donation balance of %s?", gateway.Mention(memberID))
		if bankName != "" {
			question = fmt.Sprintf("Are you sure you want to reset %s's donation balance for **%s**?", gateway.Mention(memberID), bankName)
		}
		return r.Confirm(ctx, question, func(ctx context.Context) (string, error) {
			err := c.donationService.ResetUser(ctx, &donation.ResetUserInput{
				GuildID:  guildID,
				Actor:    actor,
				MemberID: memberID,
				Bank:     bankName,
			})
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("Reset the donation balance of %s.", gateway.Mention(memberID)), nil
		})
	case "reset":
		return r.Confirm(ctx, "Are you sure you want to reset every bank, balance and setting of the donation logger in this server?", func(ctx context.Context) (string, error) {
			if err := c.donationService.Reset(ctx, &donation.ResetInput{GuildID: guildID, Actor: actor}); err != nil {
				return "", err
			}
			return "The donation logger of this server has been reset.", nil
		})
	case "logchannel":
		channelID := r.Options.ID("channel")
		err := c.donationService.SetLogChannel(ctx, &donation.SetLogChannelInput{GuildID: guildID, Actor: actor, ChannelID: channelID})
		if err != nil {
			return err
		}
		if channelID == "" {
			return r.Ephemeral(ctx, "Donation changes will no longer be logged.")
		}
		return r.Ephemeral(ctx, fmt.Sprintf("Donation changes will now be logged in %s.", gateway.ChannelMention(channelID)))
	case "showsettings":
		return c.handleShowSettings(ctx, r, actor)
	case "managers add":
		roleID := r.Options.ID("role")
		if err := c.donationService.AddManagerRole(ctx, &donation.ManagerRoleInput{GuildID: guildID, Actor: actor, RoleID: roleID}); err != nil {
			return err
		}
		return r.Ephemeral(ctx, fmt.Sprintf("%s is now a donation manager role.", gateway.RoleMention(roleID)))
	case "managers remove":
		roleID := r.Options.ID("role")
		if err := c.donationService.RemoveManagerRole(ctx, &donation.ManagerRoleInput{GuildID: guildID, Actor: actor, RoleID: roleID}); err != nil {
			return err
		}
		return r.Ephemeral(ctx, fmt.Sprintf("%s is no longer a donation manager role.", gateway.RoleMention(roleID)))
	}

	if strings.HasPrefix(r.Sub(), "bank ") {
		return c.handleBank(ctx, r, actor)
	}

	return ErrUnknownCommand
}

func (c *DonationCommand) handleSetup(ctx context.Context, r *Request, actor donation.Actor) error {
	out, err := c.donationService.Setup(ctx, &donation.SetupInput{
		GuildID:        r.GuildID(),
		Actor:          actor,
		ManagerRoleIDs: []string{r.Options.ID("manager")},
		LogChannelID:   r.Options.ID("log_channel"),
		Banks:          parseBankSpecs(r.Options.String("banks")),
	})
	if err != nil {
		return err
	}

	names := make([]string, 0, len(out.Banks))
	for _, b := range out.Banks {
		names = append(names, fmt.Sprintf("%s **%s**", b.Emoji, b.Name))
	}

	return r.Reply(ctx, &Reply{Content: fmt.Sprintf("DonationLogger is now set up with the banks %s.", format.List(names))})
}

func (c *DonationCommand) handleChange(ctx context.Context, r *Request, actor donation.Actor) error {
	input := &donation.ChangeInput{
		GuildID:   r.GuildID(),
		ChannelID: r.ChannelID(),
		Actor:     actor,
		Bank:      r.Options.String("bank"),
		MemberID:  r.Options.ID("member"),
		Amount:    r.Options.Int("amount"),
		Note:      r.Options.String("note"),
		JumpURL:   channelURL(r.GuildID(), r.ChannelID()),
	}

	var (
		out *donation.ChangeOutput
		err error
	)
	switch r.Sub() {
	case "add":
		out, err = c.donationService.Add(ctx, input)
	case "remove":
		out, err = c.donationService.Remove(ctx, input)
	default:
		out, err = c.donationService.Set(ctx, input)
	}
	if err != nil {
		return err
	}

	return r.Reply(ctx, embedReply(out.Embed, false))
}

func (c *DonationCommand) handleBank(ctx context.Context, r *Request, actor donation.Actor) error {
	guildID := r.GuildID()
	name := r.Options.String("bank")

	var (
		out *donation.BankOutput
		err error
		msg string
	)
	switch r.Sub() {
	case "bank add":
		out, err = c.donationService.BankAdd(ctx, &donation.BankAddInput{
			GuildID: guildID,
			Actor:   actor,
			Bank:    donation.BankSpec{Name: r.Options.String("name"), Emoji: r.Options.String("emoji")},
		})
		msg = "Created the bank %s **%s**."
	case "bank remove":
		return r.Confirm(ctx, fmt.Sprintf("Are you sure you want to delete the bank **%s** and every balance in it?", name), func(ctx context.Context) (string, error) {
			if err := c.donationService.BankRemove(ctx, &donation.BankRemoveInput{GuildID: guildID, Actor: actor, Name: name}); err != nil {
				return "", err
			}
			return fmt.Sprintf("Deleted the bank **%s**.", name), nil
		})
	case "bank hidden":
		hidden, _ := r.Options.Bool("hidden")
		out, err = c.donationService.BankHidden(ctx, &donation.BankHiddenInput{GuildID: guildID, Actor: actor, Name: name, Hidden: hidden})
		msg = "The bank %s **%s** is now visible."
		if hidden {
			msg = "The bank %s **%s** is now hidden."
		}
	case "bank multiplier":
		out, err = c.donationService.BankMultiplier(ctx, &donation.BankMultiplierInput{
			GuildID:    guildID,
			Actor:      actor,
			Name:       name,
			Multiplier: r.Options.Number("multiplier"),
		})
		msg = "Updated the multiplier of %s **%s**."
	case "bank emoji":
		out, err = c.donationService.BankEmoji(ctx, &donation.BankEmojiInput{GuildID: guildID, Actor: actor, Name: name, Emoji: r.Options.String("emoji")})
		msg = "Updated the emoji of %s **%s**."
	case "bank roleadd", "bank roleremove":
		input := &donation.BankRolesInput{
			GuildID:   guildID,
			Actor:     actor,
			Name:      name,
			Threshold: r.Options.Int("threshold"),
			RoleIDs:   []string{r.Options.ID("role")},
		}
		if r.Sub() == "bank roleadd" {
			out, err = c.donationService.BankRolesAdd(ctx, input)
		} else {
			out, err = c.donationService.BankRolesRemove(ctx, input)
		}
		msg = "Updated the donation roles of %s **%s**."
	default:
		return ErrUnknownCommand
	}
	if err != nil {
		return err
	}

	return r.Ephemeral(ctx, fmt.Sprintf(msg, out.Bank.Emoji, out.Bank.Name))
}

func (c *DonationCommand) handleShowSettings(ctx context.Context, r *Request, actor donation.Actor) error {
	out, err := c.donationService.GetSettings(ctx, &donation.GetSettingsInput{GuildID: r.GuildID(), Actor: actor})
	if err != nil {
		return err
	}

	managers := make([]string, 0, len(out.Settings.ManagerRoles))
	for _, id := range out.Settings.ManagerRoles {
		managers = append(managers, gateway.RoleMention(id))
	}

	logChannel := ""
	if out.Settings.LogChannelID != "" {
		logChannel = gateway.ChannelMention(out.Settings.LogChannelID)
	}

	embed := settingsEmbed("DonationLogger Settings",
		setting{"Manager Roles", strings.Join(managers, ", ")},
		setting{"Log Channel", logChannel},
	)

	for _, b := range out.Banks {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("%s %s", b.Emoji, b.Name),
			Value: bankSummary(b.Hidden, b.Multiplier, b.Roles),
		})
	}

	return r.Reply(ctx, embedReply(embed, true))
}

func bankSummary(hidden bool, multiplier float64, roles map[int64][]string) string {
	lines := []string{fmt.Sprintf("Hidden: %s", format.Bool(hidden))}
	if multiplier > 0 {
		lines = append(lines, fmt.Sprintf("Multiplier: x%g", multiplier))
	}

	thresholds := make([]int64, 0, len(roles))
	for t := range roles {
		thresholds = append(thresholds, t)
	}
	sort.Slice(thresholds, func(i, j int) bool { return thresholds[i] < thresholds[j] })

	for _, t := range thresholds {
		mentions := make([]string, 0, len(roles[t]))
		for _, id := range roles[t] {
			mentions = append(mentions, gateway.RoleMention(id))
		}
		lines = append(lines, fmt.Sprintf("%s: %s", format.Number(t), strings.Join(mentions, ", ")))
	}

	return strings.Join(lines, "\n")
}

// donationActor describes the invoking member to the donation service
func donationActor(r *Request) donation.Actor {
	actor := donation.Actor{
		UserID:      r.UserID(),
		ManageGuild: r.HasPermission(discordgo.PermissionManageGuild),
	}
	if m := r.Member(); m != nil {
		actor.RoleIDs = m.Roles
	}
	return actor
}

// looksLikeEmoji reports whether s is a custom emoji or starts outside ASCII
func looksLikeEmoji(s string) bool {
	if _, ok := gateway.CustomEmojiID(s); ok {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r > unicode.MaxASCII
}

// parseBankSpecs reads "Gold 🪙, Silver" into bank specs; the emoji is optional
func parseBankSpecs(s string) []donation.BankSpec {
	var specs []donation.BankSpec
	for _, part := range strings.Split(s, ",") {
		fields := strings.Fields(part)
		if len(fields) == 0 {
			continue
		}
		spec := donation.BankSpec{Name: strings.Join(fields, " ")}
		if last := fields[len(fields)-1]; len(fields) > 1 && looksLikeEmoji(last) {
			spec.Emoji = last
			spec.Name = strings.Join(fields[:len(fields)-1], " ")
		}
		specs = append(specs, spec)
	}
	return specs
}
