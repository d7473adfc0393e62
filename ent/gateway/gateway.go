// Code generated by ent, DO NOT EDIT.

package gateway

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the gateway type in the database.
	Label = "gateway"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "gateway_id"
	// FieldPlatform holds the string denoting the platform field in the database.
	FieldPlatform = "platform"
	// FieldServerID holds the string denoting the server_id field in the database.
	FieldServerID = "server_id"
	// FieldChannelID holds the string denoting the channel_id field in the database.
	FieldChannelID = "channel_id"
	// FieldCommunityID holds the string denoting the community_id field in the database.
	FieldCommunityID = "community_id"
	// FieldActivationCode holds the string denoting the activation_code field in the database.
	FieldActivationCode = "activation_code"
	// FieldActivated holds the string denoting the activated field in the database.
	FieldActivated = "activated"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldActivatedAt holds the string denoting the activated_at field in the database.
	FieldActivatedAt = "activated_at"
	// EdgeCommunity holds the string denoting the community edge name in mutations.
	EdgeCommunity = "community"
	// CommunityFieldID holds the string denoting the ID field of the Community.
	CommunityFieldID = "community_id"
	// Table holds the table name of the gateway in the database.
	Table = "gateways"
	// CommunityTable is the table that holds the community relation/edge.
	CommunityTable = "gateways"
	// CommunityInverseTable is the table name for the Community entity.
	// It exists in this package in order to avoid circular dependency with the "community" package.
	CommunityInverseTable = "communities"
	// CommunityColumn is the table column denoting the community relation/edge.
	CommunityColumn = "community_id"
)

// Columns holds all SQL columns for gateway fields.
var Columns = []string{
	FieldID,
	FieldPlatform,
	FieldServerID,
	FieldChannelID,
	FieldCommunityID,
	FieldActivationCode,
	FieldActivated,
	FieldCreatedAt,
	FieldActivatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultActivated holds the default value on creation for the "activated" field.
	DefaultActivated bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Platform defines the type for the "platform" enum field.
type Platform string

// Platform values.
const (
	PlatformTwitch  Platform = "twitch"
	PlatformDiscord Platform = "discord"
	PlatformSlack   Platform = "slack"
	PlatformKick    Platform = "kick"
	PlatformYoutube Platform = "youtube"
)

func (pl Platform) String() string {
	return string(pl)
}

// PlatformValidator is a validator for the "platform" field enum values. It is called by the builders before save.
func PlatformValidator(pl Platform) error {
	switch pl {
	case PlatformTwitch, PlatformDiscord, PlatformSlack, PlatformKick, PlatformYoutube:
		return nil
	default:
		return fmt.Errorf("gateway: invalid enum value for platform field: %q", pl)
	}
}

// OrderOption defines the ordering options for the Gateway queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPlatform orders the results by the platform field.
func ByPlatform(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlatform, opts...).ToFunc()
}

// ByServerID orders the results by the server_id field.
func ByServerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldServerID, opts...).ToFunc()
}

// ByChannelID orders the results by the channel_id field.
func ByChannelID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChannelID, opts...).ToFunc()
}

// ByCommunityID orders the results by the community_id field.
func ByCommunityID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommunityID, opts...).ToFunc()
}

// ByActivationCode orders the results by the activation_code field.
func ByActivationCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActivationCode, opts...).ToFunc()
}

// ByActivated orders the results by the activated field.
func ByActivated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActivated, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByActivatedAt orders the results by the activated_at field.
func ByActivatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActivatedAt, opts...).ToFunc()
}

// ByCommunityField orders the results by community field.
func ByCommunityField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCommunityStep(), sql.OrderByField(field, opts...))
	}
}
func newCommunityStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CommunityInverseTable, CommunityFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CommunityTable, CommunityColumn),
	)
}
