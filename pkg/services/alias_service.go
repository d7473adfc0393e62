package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/waddlebot/waddlebot-core/ent"
	"github.com/waddlebot/waddlebot-core/ent/alias"
)

// AliasService manages entity-scoped command aliases. Removal is a soft
// delete so usage history survives; only active aliases resolve.
type AliasService struct {
	client *ent.Client
}

// NewAliasService creates a new AliasService
func NewAliasService(client *ent.Client) *AliasService {
	return &AliasService{client: client}
}

// CreateAliasRequest carries the fields for a new alias.
type CreateAliasRequest struct {
	EntityID      string
	Alias         string
	CommandType   string
	ResponseText  string
	ActionCommand string
	CreatedBy     string
}

// CreateAlias registers an alias. A duplicate active alias on the same
// entity is a conflict; an inactive one does not block re-creation.
func (s *AliasService) CreateAlias(httpCtx context.Context, req CreateAliasRequest) (*ent.Alias, error) {
	if req.EntityID == "" {
		return nil, NewValidationError("entity_id", "required")
	}
	if req.Alias == "" || !strings.HasPrefix(req.Alias, "!") {
		return nil, NewValidationError("alias", "must start with !")
	}
	if strings.ContainsAny(req.Alias, " \t\n") {
		return nil, NewValidationError("alias", "must be a single token")
	}
	cmdType := alias.CommandType(req.CommandType)
	if err := alias.CommandTypeValidator(cmdType); err != nil {
		return nil, NewValidationError("command_type", err.Error())
	}
	switch cmdType {
	case alias.CommandTypeText, alias.CommandTypeAction:
		if req.ResponseText == "" {
			return nil, NewValidationError("response_text", "required for text and action aliases")
		}
	case alias.CommandTypeCommand:
		if req.ActionCommand == "" {
			return nil, NewValidationError("action_command", "required for command aliases")
		}
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	exists, err := s.client.Alias.Query().
		Where(
			alias.EntityIDEQ(req.EntityID),
			alias.AliasEQ(req.Alias),
			alias.IsActive(true),
		).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check alias: %w", err)
	}
	if exists {
		return nil, ErrAlreadyExists
	}

	a, err := s.client.Alias.Create().
		SetEntityID(req.EntityID).
		SetAlias(req.Alias).
		SetCommandType(cmdType).
		SetResponseText(req.ResponseText).
		SetActionCommand(req.ActionCommand).
		SetCreatedBy(req.CreatedBy).
		Save(ctx)
	if err != nil {
		// The partial unique index closes the check-then-create race.
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create alias: %w", err)
	}
	return a, nil
}

// RemoveAlias soft-deletes an active alias.
func (s *AliasService) RemoveAlias(httpCtx context.Context, entityID, name string) error {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	n, err := s.client.Alias.Update().
		Where(
			alias.EntityIDEQ(entityID),
			alias.AliasEQ(name),
			alias.IsActive(true),
		).
		SetIsActive(false).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to remove alias: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ListAliases returns the active aliases for an entity.
func (s *AliasService) ListAliases(httpCtx context.Context, entityID string) ([]*ent.Alias, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	aliases, err := s.client.Alias.Query().
		Where(alias.EntityIDEQ(entityID), alias.IsActive(true)).
		Order(ent.Asc(alias.FieldAlias)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list aliases: %w", err)
	}
	return aliases, nil
}

// Expansion is the outcome of resolving an alias against a message.
type Expansion struct {
	Alias *ent.Alias
	// Message is the expanded command line for command aliases, or the
	// stored response text for text and action aliases.
	Message string
	// Direct reports that Message is a finished response, not a command to
	// dispatch.
	Direct bool
}

// Resolve matches the first token of message against the entity's active
// aliases and expands the stored command. No match returns ErrNotFound; the
// router treats that as "no alias" and dispatches the message as-is.
func (s *AliasService) Resolve(httpCtx context.Context, entityID, message, username string) (*Expansion, error) {
	fields := strings.Fields(message)
	if len(fields) == 0 {
		return nil, ErrNotFound
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	a, err := s.client.Alias.Query().
		Where(
			alias.EntityIDEQ(entityID),
			alias.AliasEQ(fields[0]),
			alias.IsActive(true),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to resolve alias: %w", err)
	}

	// Usage bookkeeping is best-effort; resolution never fails on it.
	if err := a.Update().
		AddUsageCount(1).
		SetLastUsed(time.Now()).
		Exec(ctx); err != nil {
		slog.Warn("Alias usage bookkeeping failed", "alias", a.Alias, "error", err)
	}

	args := fields[1:]
	exp := &Expansion{Alias: a}
	switch a.CommandType {
	case alias.CommandTypeText, alias.CommandTypeAction:
		exp.Message = interpolate(a.ResponseText, username, args)
		exp.Direct = true
	case alias.CommandTypeCounter:
		exp.Message = interpolate(a.ResponseText, username, args)
		exp.Message = strings.ReplaceAll(exp.Message, "{count}", strconv.Itoa(a.UsageCount+1))
		exp.Direct = true
	default:
		exp.Message = interpolate(a.ActionCommand, username, args)
	}
	return exp, nil
}

// interpolate fills the {user}, {arg1..n}, and {all_args} placeholders.
// Unfilled argument placeholders render empty.
func interpolate(template, username string, args []string) string {
	out := strings.ReplaceAll(template, "{user}", username)
	out = strings.ReplaceAll(out, "{all_args}", strings.Join(args, " "))
	for i := 1; i <= 9; i++ {
		placeholder := fmt.Sprintf("{arg%d}", i)
		if !strings.Contains(out, placeholder) {
			continue
		}
		val := ""
		if i <= len(args) {
			val = args[i-1]
		}
		out = strings.ReplaceAll(out, placeholder, val)
	}
	return out
}
