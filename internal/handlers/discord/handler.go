package discord

import (
	"context"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	rpgerr "github.com/emberveil/rp-combat/internal/errors"
	"github.com/emberveil/rp-combat/internal/services"
	"github.com/emberveil/rp-combat/internal/services/combat"
)

// Handler routes chat interactions to the combat service
type Handler struct {
	ServiceProvider *services.Provider
}

// HandlerConfig holds configuration for the Discord handler
type HandlerConfig struct {
	ServiceProvider *services.Provider
}

// NewHandler creates a new Discord handler
func NewHandler(cfg *HandlerConfig) *Handler {
	return &Handler{
		ServiceProvider: cfg.ServiceProvider,
	}
}

// commands are the slash commands the bot registers
var commands = []*discordgo.ApplicationCommand{
	{
		Name:        "attack",
		Description: "Attack another character",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "target",
				Description: "Who to attack",
				Required:    true,
			},
		},
	},
	{
		Name:        "power",
		Description: "Activate one of your powers",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "name",
				Description: "Power name",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "target",
				Description: "Primary target, if the power needs one",
				Required:    false,
			},
			{
				Type:        discordgo.ApplicationCommandOptionBoolean,
				Name:        "offensive",
				Description: "Use the power's attack effects instead of its activation effects",
				Required:    false,
			},
		},
	},
	{
		Name:        "check",
		Description: "Roll a stat check",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "stat",
				Description: "Stat to check",
				Required:    true,
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "Physical", Value: "physical"},
					{Name: "Dexterity", Value: "dexterity"},
					{Name: "Mental", Value: "mental"},
					{Name: "Perception", Value: "perception"},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "tn",
				Description: "Target number (default 10)",
				Required:    false,
			},
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "target",
				Description: "Oppose the check against this character's stat",
				Required:    false,
			},
		},
	},
}

// RegisterCommands registers the slash commands, globally or per guild
func (h *Handler) RegisterCommands(s *discordgo.Session, guildID string) error {
	for _, cmd := range commands {
		if _, err := s.ApplicationCommandCreate(s.State.User.ID, guildID, cmd); err != nil {
			return fmt.Errorf("failed to register command %s: %w", cmd.Name, err)
		}
	}
	return nil
}

// HandleInteraction dispatches an incoming interaction
func (h *Handler) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	ctx := context.Background()
	data := i.ApplicationCommandData()

	var message string
	var err error
	switch data.Name {
	case "attack":
		message, err = h.handleAttack(ctx, i, data)
	case "power":
		message, err = h.handlePower(ctx, i, data)
	case "check":
		message, err = h.handleCheck(ctx, i, data)
	default:
		return
	}

	if err != nil {
		message = friendlyError(err)
	}
	h.respond(s, i, message)
}

// callerID returns the invoking user's id for both guild and DM interactions
func callerID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

func (h *Handler) handleAttack(ctx context.Context, i *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) (string, error) {
	opts := optionMap(data)
	caster, err := h.ServiceProvider.CombatService.FindByOwner(ctx, callerID(i))
	if err != nil {
		return "", err
	}
	target, err := h.ServiceProvider.CombatService.FindByOwner(ctx, opts["target"].UserValue(nil).ID)
	if err != nil {
		return "", err
	}

	result, err := h.ServiceProvider.CombatService.Attack(ctx, &combat.AttackInput{
		CasterID: caster.ID,
		TargetID: target.ID,
	})
	if err != nil {
		return "", err
	}
	return result.Narrative, nil
}

func (h *Handler) handlePower(ctx context.Context, i *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) (string, error) {
	opts := optionMap(data)
	caster, err := h.ServiceProvider.CombatService.FindByOwner(ctx, callerID(i))
	if err != nil {
		return "", err
	}

	targetID := ""
	if opt, ok := opts["target"]; ok {
		target, targetErr := h.ServiceProvider.CombatService.FindByOwner(ctx, opt.UserValue(nil).ID)
		if targetErr != nil {
			return "", targetErr
		}
		targetID = target.ID
	}

	name := opts["name"].StringValue()
	offensive := false
	if opt, ok := opts["offensive"]; ok {
		offensive = opt.BoolValue()
	}

	var result *combat.ActionResult
	if offensive {
		result, err = h.ServiceProvider.CombatService.PowerAttack(ctx, &combat.PowerAttackInput{
			CasterID:    caster.ID,
			AbilityName: name,
			TargetID:    targetID,
		})
	} else {
		result, err = h.ServiceProvider.CombatService.UsePower(ctx, &combat.UsePowerInput{
			CasterID:    caster.ID,
			AbilityName: name,
			TargetID:    targetID,
		})
	}
	if err != nil {
		return "", err
	}
	return result.Narrative, nil
}

func (h *Handler) handleCheck(ctx context.Context, i *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) (string, error) {
	opts := optionMap(data)
	caster, err := h.ServiceProvider.CombatService.FindByOwner(ctx, callerID(i))
	if err != nil {
		return "", err
	}

	input := &combat.StatCheckInput{
		CasterID: caster.ID,
		Stat:     opts["stat"].StringValue(),
	}
	if opt, ok := opts["tn"]; ok {
		input.TargetNumber = int(opt.IntValue())
	}
	if opt, ok := opts["target"]; ok {
		target, targetErr := h.ServiceProvider.CombatService.FindByOwner(ctx, opt.UserValue(nil).ID)
		if targetErr != nil {
			return "", targetErr
		}
		input.TargetID = target.ID
	}

	result, err := h.ServiceProvider.CombatService.StatCheck(ctx, input)
	if err != nil {
		return "", err
	}
	return result.Narrative, nil
}

func optionMap(data discordgo.ApplicationCommandInteractionData) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	out := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(data.Options))
	for _, opt := range data.Options {
		out[opt.Name] = opt
	}
	return out
}

// friendlyError maps engine errors to a message safe to show in chat
func friendlyError(err error) string {
	switch rpgerr.GetCode(err) {
	case rpgerr.CodeNotFound, rpgerr.CodeInvalidArgument, rpgerr.CodePrecondition, rpgerr.CodeValidation:
		return err.Error()
	default:
		log.Printf("Unexpected error handling interaction: %v", err)
		return "Something went wrong resolving that action."
	}
}

func (h *Handler) respond(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: message,
		},
	})
	if err != nil {
		log.Printf("Failed to respond to interaction: %v", err)
	}
}
