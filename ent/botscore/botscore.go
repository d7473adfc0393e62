// Code generated by ent, DO NOT EDIT.

package botscore

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the botscore type in the database.
	Label = "bot_score"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCommunityID holds the string denoting the community_id field in the database.
	FieldCommunityID = "community_id"
	// FieldOverall holds the string denoting the overall field in the database.
	FieldOverall = "overall"
	// FieldGrade holds the string denoting the grade field in the database.
	FieldGrade = "grade"
	// FieldSizeCategory holds the string denoting the size_category field in the database.
	FieldSizeCategory = "size_category"
	// FieldBadActorScore holds the string denoting the bad_actor_score field in the database.
	FieldBadActorScore = "bad_actor_score"
	// FieldReputationScore holds the string denoting the reputation_score field in the database.
	FieldReputationScore = "reputation_score"
	// FieldSecurityScore holds the string denoting the security_score field in the database.
	FieldSecurityScore = "security_score"
	// FieldAiBehavioralScore holds the string denoting the ai_behavioral_score field in the database.
	FieldAiBehavioralScore = "ai_behavioral_score"
	// FieldWeights holds the string denoting the weights field in the database.
	FieldWeights = "weights"
	// FieldCalculatedAt holds the string denoting the calculated_at field in the database.
	FieldCalculatedAt = "calculated_at"
	// FieldNextRecalculation holds the string denoting the next_recalculation field in the database.
	FieldNextRecalculation = "next_recalculation"
	// EdgeCommunity holds the string denoting the community edge name in mutations.
	EdgeCommunity = "community"
	// CommunityFieldID holds the string denoting the ID field of the Community.
	CommunityFieldID = "community_id"
	// Table holds the table name of the botscore in the database.
	Table = "bot_scores"
	// CommunityTable is the table that holds the community relation/edge.
	CommunityTable = "bot_scores"
	// CommunityInverseTable is the table name for the Community entity.
	// It exists in this package in order to avoid circular dependency with the "community" package.
	CommunityInverseTable = "communities"
	// CommunityColumn is the table column denoting the community relation/edge.
	CommunityColumn = "community_id"
)

// Columns holds all SQL columns for botscore fields.
var Columns = []string{
	FieldID,
	FieldCommunityID,
	FieldOverall,
	FieldGrade,
	FieldSizeCategory,
	FieldBadActorScore,
	FieldReputationScore,
	FieldSecurityScore,
	FieldAiBehavioralScore,
	FieldWeights,
	FieldCalculatedAt,
	FieldNextRecalculation,
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
	// GradeValidator is a validator for the "grade" field. It is called by the builders before save.
	GradeValidator func(string) error
	// DefaultCalculatedAt holds the default value on creation for the "calculated_at" field.
	DefaultCalculatedAt func() time.Time
)

// SizeCategory defines the type for the "size_category" enum field.
type SizeCategory string

// SizeCategory values.
const (
	SizeCategorySmall  SizeCategory = "small"
	SizeCategoryMedium SizeCategory = "medium"
	SizeCategoryLarge  SizeCategory = "large"
)

func (sc SizeCategory) String() string {
	return string(sc)
}

// SizeCategoryValidator is a validator for the "size_category" field enum values. It is called by the builders before save.
func SizeCategoryValidator(sc SizeCategory) error {
	switch sc {
	case SizeCategorySmall, SizeCategoryMedium, SizeCategoryLarge:
		return nil
	default:
		return fmt.Errorf("botscore: invalid enum value for size_category field: %q", sc)
	}
}

// OrderOption defines the ordering options for the BotScore queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCommunityID orders the results by the community_id field.
func ByCommunityID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommunityID, opts...).ToFunc()
}

// ByOverall orders the results by the overall field.
func ByOverall(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOverall, opts...).ToFunc()
}

// ByGrade orders the results by the grade field.
func ByGrade(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGrade, opts...).ToFunc()
}

// BySizeCategory orders the results by the size_category field.
func BySizeCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSizeCategory, opts...).ToFunc()
}

// ByBadActorScore orders the results by the bad_actor_score field.
func ByBadActorScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBadActorScore, opts...).ToFunc()
}

// ByReputationScore orders the results by the reputation_score field.
func ByReputationScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReputationScore, opts...).ToFunc()
}

// BySecurityScore orders the results by the security_score field.
func BySecurityScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSecurityScore, opts...).ToFunc()
}

// ByAiBehavioralScore orders the results by the ai_behavioral_score field.
func ByAiBehavioralScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAiBehavioralScore, opts...).ToFunc()
}

// ByCalculatedAt orders the results by the calculated_at field.
func ByCalculatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCalculatedAt, opts...).ToFunc()
}

// ByNextRecalculation orders the results by the next_recalculation field.
func ByNextRecalculation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextRecalculation, opts...).ToFunc()
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
		sqlgraph.Edge(sqlgraph.O2O, true, CommunityTable, CommunityColumn),
	)
}
