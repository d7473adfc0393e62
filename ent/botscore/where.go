// Code generated by ent, DO NOT EDIT.

package botscore

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/waddlebot/waddlebot-core/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.BotScore {
	return predicate.BotScore(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.BotScore {
	return predicate.BotScore(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.BotScore {
	return predicate.BotScore(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.BotScore {
	return predicate.BotScore(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.BotScore {
	return predicate.BotScore(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.BotScore {
	return predicate.BotScore(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.BotScore {
	return predicate.BotScore(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.BotScore {
	return predicate.BotScore(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.BotScore {
	return predicate.BotScore(sql.FieldLTE(FieldID, id))
}

// CommunityID applies equality check predicate on the "community_id" field. It's identical to CommunityIDEQ.
func CommunityID(v string) predicate.BotScore {
	return predicate.BotScore(sql.FieldEQ(FieldCommunityID, v))
}

// Overall applies equality check predicate on the "overall" field. It's identical to OverallEQ.
func Overall(v int) predicate.BotScore {
	return predicate.BotScore(sql.FieldEQ(FieldOverall, v))
}

// Grade applies equality check predicate on the "grade" field. It's identical to GradeEQ.
func Grade(v string) predicate.BotScore {
	return predicate.BotScore(sql.FieldEQ(FieldGrade, v))
}

// BadActorScore applies equality check predicate on the "bad_actor_score" field. It's identical to BadActorScoreEQ.
func BadActorScore(v float64) predicate.BotScore {
	return predicate.BotScore(sql.FieldEQ(FieldBadActorScore, v))
}

// ReputationScore applies equality check predicate on the "reputation_score" field. It's identical to ReputationScoreEQ.
func ReputationScore(v float64) predicate.BotScore {
	return predicate.BotScore(sql.FieldEQ(FieldReputationScore, v))
}

// SecurityScore applies equality check predicate on the "security_score" field. It's identical to SecurityScoreEQ.
func SecurityScore(v float64) predicate.BotScore {
	return predicate.BotScore(sql.FieldEQ(FieldSecurityScore, v))
}

// AiBehavioralScore applies equality check predicate on the "ai_behavioral_score" field. It's identical to AiBehavioralScoreEQ.
func AiBehavioralScore(v float64) predicate.BotScore {
	return predicate.BotScore(sql.FieldEQ(FieldAiBehavioralScore, v))
}

// CalculatedAt applies equality check predicate on the "calculated_at" field. It's identical to CalculatedAtEQ.
func CalculatedAt(v time.Time) predicate.BotScore {
	return predicate.BotScore(sql.FieldEQ(FieldCalculatedAt, v))
}

// NextRecalculation applies equality check predicate on the "next_recalculation" field. It's identical to NextRecalculationEQ.
func NextRecalculation(v time.Time) predicate.BotScore {
	return predicate.BotScore(sql.FieldEQ(FieldNextRecalculation, v))
}

// CommunityIDEQ applies the EQ predicate on the "community_id" field.
func CommunityIDEQ(v string) predicate.BotScore {
	return predicate.BotScore(sql.FieldEQ(FieldCommunityID, v))
}

// CommunityIDNEQ applies the NEQ predicate on the "community_id" field.
func CommunityIDNEQ(v string) predicate.BotScore {
	return predicate.BotScore(sql.FieldNEQ(FieldCommunityID, v))
}

// CommunityIDIn applies the In predicate on the "community_id" field.
func CommunityIDIn(vs ...string) predicate.BotScore {
	return predicate.BotScore(sql.FieldIn(FieldCommunityID, vs...))
}

// CommunityIDNotIn applies the NotIn predicate on the "community_id" field.
func CommunityIDNotIn(vs ...string) predicate.BotScore {
	return predicate.BotScore(sql.FieldNotIn(FieldCommunityID, vs...))
}

// CommunityIDGT applies the GT predicate on the "community_id" field.
func CommunityIDGT(v string) predicate.BotScore {
	return predicate.BotScore(sql.FieldGT(FieldCommunityID, v))
}

// CommunityIDGTE applies the GTE predicate on the "community_id" field.
func CommunityIDGTE(v string) predicate.BotScore {
	return predicate.BotScore(sql.FieldGTE(FieldCommunityID, v))
}

// CommunityIDLT applies the LT predicate on the "community_id" field.
func CommunityIDLT(v string) predicate.BotScore {
	return predicate.BotScore(sql.FieldLT(FieldCommunityID, v))
}

// CommunityIDLTE applies the LTE predicate on the "community_id" field.
func CommunityIDLTE(v string) predicate.BotScore {
	return predicate.BotScore(sql.FieldLTE(FieldCommunityID, v))
}

// CommunityIDContains applies the Contains predicate on the "community_id" field.
func CommunityIDContains(v string) predicate.BotScore {
	return predicate.BotScore(sql.FieldContains(FieldCommunityID, v))
}

// CommunityIDHasPrefix applies the HasPrefix predicate on the "community_id" field.
func CommunityIDHasPrefix(v string) predicate.BotScore {
	return predicate.BotScore(sql.FieldHasPrefix(FieldCommunityID, v))
}

// CommunityIDHasSuffix applies the HasSuffix predicate on the "community_id" field.
func CommunityIDHasSuffix(v string) predicate.BotScore {
	return predicate.BotScore(sql.FieldHasSuffix(FieldCommunityID, v))
}

// CommunityIDEqualFold applies the EqualFold predicate on the "community_id" field.
func CommunityIDEqualFold(v string) predicate.BotScore {
	return predicate.BotScore(sql.FieldEqualFold(FieldCommunityID, v))
}

// CommunityIDContainsFold applies the ContainsFold predicate on the "community_id" field.
func CommunityIDContainsFold(v string) predicate.BotScore {
	return predicate.BotScore(sql.FieldContainsFold(FieldCommunityID, v))
}

// OverallEQ applies the EQ predicate on the "overall" field.
func OverallEQ(v int) predicate.BotScore {
	return predicate.BotScore(sql.FieldEQ(FieldOverall, v))
}

// OverallNEQ applies the NEQ predicate on the "overall" field.
func OverallNEQ(v int) predicate.BotScore {
	return predicate.BotScore(sql.FieldNEQ(FieldOverall, v))
}

// OverallIn applies the In predicate on the "overall" field.
func OverallIn(vs ...int) predicate.BotScore {
	return predicate.BotScore(sql.FieldIn(FieldOverall, vs...))
}

// OverallNotIn applies the NotIn predicate on the "overall" field.
func OverallNotIn(vs ...int) predicate.BotScore {
	return predicate.BotScore(sql.FieldNotIn(FieldOverall, vs...))
}

// OverallGT applies the GT predicate on the "overall" field.
func OverallGT(v int) predicate.BotScore {
	return predicate.BotScore(sql.FieldGT(FieldOverall, v))
}

// OverallGTE applies the GTE predicate on the "overall" field.
func OverallGTE(v int) predicate.BotScore {
	return predicate.BotScore(sql.FieldGTE(FieldOverall, v))
}

// OverallLT applies the LT predicate on the "overall" field.
func OverallLT(v int) predicate.BotScore {
	return predicate.BotScore(sql.FieldLT(FieldOverall, v))
}

// OverallLTE applies the LTE predicate on the "overall" field.
func OverallLTE(v int) predicate.BotScore {
	return predicate.BotScore(sql.FieldLTE(FieldOverall, v))
}

// GradeEQ applies the EQ predicate on the "grade" field.
func GradeEQ(v string) predicate.BotScore {
	return predicate.BotScore(sql.FieldEQ(FieldGrade, v))
}

// GradeNEQ applies the NEQ predicate on the "grade" field.
func GradeNEQ(v string) predicate.BotScore {
	return predicate.BotScore(sql.FieldNEQ(FieldGrade, v))
}

// GradeIn applies the In predicate on the "grade" field.
func GradeIn(vs ...string) predicate.BotScore {
	return predicate.BotScore(sql.FieldIn(FieldGrade, vs...))
}

// GradeNotIn applies the NotIn predicate on the "grade" field.
func GradeNotIn(vs ...string) predicate.BotScore {
	return predicate.BotScore(sql.FieldNotIn(FieldGrade, vs...))
}

// GradeGT applies the GT predicate on the "grade" field.
func GradeGT(v string) predicate.BotScore {
	return predicate.BotScore(sql.FieldGT(FieldGrade, v))
}

// GradeGTE applies the GTE predicate on the "grade" field.
func GradeGTE(v string) predicate.BotScore {
	return predicate.BotScore(sql.FieldGTE(FieldGrade, v))
}

// GradeLT applies the LT predicate on the "grade" field.
func GradeLT(v string) predicate.BotScore {
	return predicate.BotScore(sql.FieldLT(FieldGrade, v))
}

// GradeLTE applies the LTE predicate on the "grade" field.
func GradeLTE(v string) predicate.BotScore {
	return predicate.BotScore(sql.FieldLTE(FieldGrade, v))
}

// GradeContains applies the Contains predicate on the "grade" field.
func GradeContains(v string) predicate.BotScore {
	return predicate.BotScore(sql.FieldContains(FieldGrade, v))
}

// GradeHasPrefix applies the HasPrefix predicate on the "grade" field.
func GradeHasPrefix(v string) predicate.BotScore {
	return predicate.BotScore(sql.FieldHasPrefix(FieldGrade, v))
}

// GradeHasSuffix applies the HasSuffix predicate on the "grade" field.
func GradeHasSuffix(v string) predicate.BotScore {
	return predicate.BotScore(sql.FieldHasSuffix(FieldGrade, v))
}

// GradeEqualFold applies the EqualFold predicate on the "grade" field.
func GradeEqualFold(v string) predicate.BotScore {
	return predicate.BotScore(sql.FieldEqualFold(FieldGrade, v))
}

// GradeContainsFold applies the ContainsFold predicate on the "grade" field.
func GradeContainsFold(v string) predicate.BotScore {
	return predicate.BotScore(sql.FieldContainsFold(FieldGrade, v))
}

// SizeCategoryEQ applies the EQ predicate on the "size_category" field.
func SizeCategoryEQ(v SizeCategory) predicate.BotScore {
	return predicate.BotScore(sql.FieldEQ(FieldSizeCategory, v))
}

// SizeCategoryNEQ applies the NEQ predicate on the "size_category" field.
func SizeCategoryNEQ(v SizeCategory) predicate.BotScore {
	return predicate.BotScore(sql.FieldNEQ(FieldSizeCategory, v))
}

// SizeCategoryIn applies the In predicate on the "size_category" field.
func SizeCategoryIn(vs ...SizeCategory) predicate.BotScore {
	return predicate.BotScore(sql.FieldIn(FieldSizeCategory, vs...))
}

// SizeCategoryNotIn applies the NotIn predicate on the "size_category" field.
func SizeCategoryNotIn(vs ...SizeCategory) predicate.BotScore {
	return predicate.BotScore(sql.FieldNotIn(FieldSizeCategory, vs...))
}

// BadActorScoreEQ applies the EQ predicate on the "bad_actor_score" field.
func BadActorScoreEQ(v float64) predicate.BotScore {
	return predicate.BotScore(sql.FieldEQ(FieldBadActorScore, v))
}

// BadActorScoreNEQ applies the NEQ predicate on the "bad_actor_score" field.
func BadActorScoreNEQ(v float64) predicate.BotScore {
	return predicate.BotScore(sql.FieldNEQ(FieldBadActorScore, v))
}

// BadActorScoreIn applies the In predicate on the "bad_actor_score" field.
func BadActorScoreIn(vs ...float64) predicate.BotScore {
	return predicate.BotScore(sql.FieldIn(FieldBadActorScore, vs...))
}

// BadActorScoreNotIn applies the NotIn predicate on the "bad_actor_score" field.
func BadActorScoreNotIn(vs ...float64) predicate.BotScore {
	return predicate.BotScore(sql.FieldNotIn(FieldBadActorScore, vs...))
}

// BadActorScoreGT applies the GT predicate on the "bad_actor_score" field.
func BadActorScoreGT(v float64) predicate.BotScore {
	return predicate.BotScore(sql.FieldGT(FieldBadActorScore, v))
}

// BadActorScoreGTE applies the GTE predicate on the "bad_actor_score" field.
func BadActorScoreGTE(v float64) predicate.BotScore {
	return predicate.BotScore(sql.FieldGTE(FieldBadActorScore, v))
}

// BadActorScoreLT applies the LT predicate on the "bad_actor_score" field.
func BadActorScoreLT(v float64) predicate.BotScore {
	return predicate.BotScore(sql.FieldLT(FieldBadActorScore, v))
}

// BadActorScoreLTE applies the LTE predicate on the "bad_actor_score" field.
func BadActorScoreLTE(v float64) predicate.BotScore {
	return predicate.BotScore(sql.FieldLTE(FieldBadActorScore, v))
}

// ReputationScoreEQ applies the EQ predicate on the "reputation_score" field.
func ReputationScoreEQ(v float64) predicate.BotScore {
	return predicate.BotScore(sql.FieldEQ(FieldReputationScore, v))
}

// ReputationScoreNEQ applies the NEQ predicate on the "reputation_score" field.
func ReputationScoreNEQ(v float64) predicate.BotScore {
	return predicate.BotScore(sql.FieldNEQ(FieldReputationScore, v))
}

// ReputationScoreIn applies the In predicate on the "reputation_score" field.
func ReputationScoreIn(vs ...float64) predicate.BotScore {
	return predicate.BotScore(sql.FieldIn(FieldReputationScore, vs...))
}

// ReputationScoreNotIn applies the NotIn predicate on the "reputation_score" field.
func ReputationScoreNotIn(vs ...float64) predicate.BotScore {
	return predicate.BotScore(sql.FieldNotIn(FieldReputationScore, vs...))
}

// ReputationScoreGT applies the GT predicate on the "reputation_score" field.
func ReputationScoreGT(v float64) predicate.BotScore {
	return predicate.BotScore(sql.FieldGT(FieldReputationScore, v))
}

// ReputationScoreGTE applies the GTE predicate on the "reputation_score" field.
func ReputationScoreGTE(v float64) predicate.BotScore {
	return predicate.BotScore(sql.FieldGTE(FieldReputationScore, v))
}

// ReputationScoreLT applies the LT predicate on the "reputation_score" field.
func ReputationScoreLT(v float64) predicate.BotScore {
	return predicate.BotScore(sql.FieldLT(FieldReputationScore, v))
}

// ReputationScoreLTE applies the LTE predicate on the "reputation_score" field.
func ReputationScoreLTE(v float64) predicate.BotScore {
	return predicate.BotScore(sql.FieldLTE(FieldReputationScore, v))
}

// SecurityScoreEQ applies the EQ predicate on the "security_score" field.
func SecurityScoreEQ(v float64) predicate.BotScore {
	return predicate.BotScore(sql.FieldEQ(FieldSecurityScore, v))
}

// SecurityScoreNEQ applies the NEQ predicate on the "security_score" field.
func SecurityScoreNEQ(v float64) predicate.BotScore {
	return predicate.BotScore(sql.FieldNEQ(FieldSecurityScore, v))
}

// SecurityScoreIn applies the In predicate on the "security_score" field.
func SecurityScoreIn(vs ...float64) predicate.BotScore {
	return predicate.BotScore(sql.FieldIn(FieldSecurityScore, vs...))
}

// SecurityScoreNotIn applies the NotIn predicate on the "security_score" field.
func SecurityScoreNotIn(vs ...float64) predicate.BotScore {
	return predicate.BotScore(sql.FieldNotIn(FieldSecurityScore, vs...))
}

// SecurityScoreGT applies the GT predicate on the "security_score" field.
func SecurityScoreGT(v float64) predicate.BotScore {
	return predicate.BotScore(sql.FieldGT(FieldSecurityScore, v))
}

// SecurityScoreGTE applies the GTE predicate on the "security_score" field.
func SecurityScoreGTE(v float64) predicate.BotScore {
	return predicate.BotScore(sql.FieldGTE(FieldSecurityScore, v))
}

// SecurityScoreLT applies the LT predicate on the "security_score" field.
func SecurityScoreLT(v float64) predicate.BotScore {
	return predicate.BotScore(sql.FieldLT(FieldSecurityScore, v))
}

// SecurityScoreLTE applies the LTE predicate on the "security_score" field.
func SecurityScoreLTE(v float64) predicate.BotScore {
	return predicate.BotScore(sql.FieldLTE(FieldSecurityScore, v))
}

// AiBehavioralScoreEQ applies the EQ predicate on the "ai_behavioral_score" field.
func AiBehavioralScoreEQ(v float64) predicate.BotScore {
	return predicate.BotScore(sql.FieldEQ(FieldAiBehavioralScore, v))
}

// AiBehavioralScoreNEQ applies the NEQ predicate on the "ai_behavioral_score" field.
func AiBehavioralScoreNEQ(v float64) predicate.BotScore {
	return predicate.BotScore(sql.FieldNEQ(FieldAiBehavioralScore, v))
}

// AiBehavioralScoreIn applies the In predicate on the "ai_behavioral_score" field.
func AiBehavioralScoreIn(vs ...float64) predicate.BotScore {
	return predicate.BotScore(sql.FieldIn(FieldAiBehavioralScore, vs...))
}

// AiBehavioralScoreNotIn applies the NotIn predicate on the "ai_behavioral_score" field.
func AiBehavioralScoreNotIn(vs ...float64) predicate.BotScore {
	return predicate.BotScore(sql.FieldNotIn(FieldAiBehavioralScore, vs...))
}

// AiBehavioralScoreGT applies the GT predicate on the "ai_behavioral_score" field.
func AiBehavioralScoreGT(v float64) predicate.BotScore {
	return predicate.BotScore(sql.FieldGT(FieldAiBehavioralScore, v))
}

// AiBehavioralScoreGTE applies the GTE predicate on the "ai_behavioral_score" field.
func AiBehavioralScoreGTE(v float64) predicate.BotScore {
	return predicate.BotScore(sql.FieldGTE(FieldAiBehavioralScore, v))
}

// AiBehavioralScoreLT applies the LT predicate on the "ai_behavioral_score" field.
func AiBehavioralScoreLT(v float64) predicate.BotScore {
	return predicate.BotScore(sql.FieldLT(FieldAiBehavioralScore, v))
}

// AiBehavioralScoreLTE applies the LTE predicate on the "ai_behavioral_score" field.
func AiBehavioralScoreLTE(v float64) predicate.BotScore {
	return predicate.BotScore(sql.FieldLTE(FieldAiBehavioralScore, v))
}

// CalculatedAtEQ applies the EQ predicate on the "calculated_at" field.
func CalculatedAtEQ(v time.Time) predicate.BotScore {
	return predicate.BotScore(sql.FieldEQ(FieldCalculatedAt, v))
}

// CalculatedAtNEQ applies the NEQ predicate on the "calculated_at" field.
func CalculatedAtNEQ(v time.Time) predicate.BotScore {
	return predicate.BotScore(sql.FieldNEQ(FieldCalculatedAt, v))
}

// CalculatedAtIn applies the In predicate on the "calculated_at" field.
func CalculatedAtIn(vs ...time.Time) predicate.BotScore {
	return predicate.BotScore(sql.FieldIn(FieldCalculatedAt, vs...))
}

// CalculatedAtNotIn applies the NotIn predicate on the "calculated_at" field.
func CalculatedAtNotIn(vs ...time.Time) predicate.BotScore {
	return predicate.BotScore(sql.FieldNotIn(FieldCalculatedAt, vs...))
}

// CalculatedAtGT applies the GT predicate on the "calculated_at" field.
func CalculatedAtGT(v time.Time) predicate.BotScore {
	return predicate.BotScore(sql.FieldGT(FieldCalculatedAt, v))
}

// CalculatedAtGTE applies the GTE predicate on the "calculated_at" field.
func CalculatedAtGTE(v time.Time) predicate.BotScore {
	return predicate.BotScore(sql.FieldGTE(FieldCalculatedAt, v))
}

// CalculatedAtLT applies the LT predicate on the "calculated_at" field.
func CalculatedAtLT(v time.Time) predicate.BotScore {
	return predicate.BotScore(sql.FieldLT(FieldCalculatedAt, v))
}

// CalculatedAtLTE applies the LTE predicate on the "calculated_at" field.
func CalculatedAtLTE(v time.Time) predicate.BotScore {
	return predicate.BotScore(sql.FieldLTE(FieldCalculatedAt, v))
}

// NextRecalculationEQ applies the EQ predicate on the "next_recalculation" field.
func NextRecalculationEQ(v time.Time) predicate.BotScore {
	return predicate.BotScore(sql.FieldEQ(FieldNextRecalculation, v))
}

// NextRecalculationNEQ applies the NEQ predicate on the "next_recalculation" field.
func NextRecalculationNEQ(v time.Time) predicate.BotScore {
	return predicate.BotScore(sql.FieldNEQ(FieldNextRecalculation, v))
}

// NextRecalculationIn applies the In predicate on the "next_recalculation" field.
func NextRecalculationIn(vs ...time.Time) predicate.BotScore {
	return predicate.BotScore(sql.FieldIn(FieldNextRecalculation, vs...))
}

// NextRecalculationNotIn applies the NotIn predicate on the "next_recalculation" field.
func NextRecalculationNotIn(vs ...time.Time) predicate.BotScore {
	return predicate.BotScore(sql.FieldNotIn(FieldNextRecalculation, vs...))
}

// NextRecalculationGT applies the GT predicate on the "next_recalculation" field.
func NextRecalculationGT(v time.Time) predicate.BotScore {
	return predicate.BotScore(sql.FieldGT(FieldNextRecalculation, v))
}

// NextRecalculationGTE applies the GTE predicate on the "next_recalculation" field.
func NextRecalculationGTE(v time.Time) predicate.BotScore {
	return predicate.BotScore(sql.FieldGTE(FieldNextRecalculation, v))
}

// NextRecalculationLT applies the LT predicate on the "next_recalculation" field.
func NextRecalculationLT(v time.Time) predicate.BotScore {
	return predicate.BotScore(sql.FieldLT(FieldNextRecalculation, v))
}

// NextRecalculationLTE applies the LTE predicate on the "next_recalculation" field.
func NextRecalculationLTE(v time.Time) predicate.BotScore {
	return predicate.BotScore(sql.FieldLTE(FieldNextRecalculation, v))
}

// HasCommunity applies the HasEdge predicate on the "community" edge.
func HasCommunity() predicate.BotScore {
	return predicate.BotScore(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, CommunityTable, CommunityColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCommunityWith applies the HasEdge predicate on the "community" edge with a given conditions (other predicates).
func HasCommunityWith(preds ...predicate.Community) predicate.BotScore {
	return predicate.BotScore(func(s *sql.Selector) {
		step := newCommunityStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BotScore) predicate.BotScore {
	return predicate.BotScore(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BotScore) predicate.BotScore {
	return predicate.BotScore(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BotScore) predicate.BotScore {
	return predicate.BotScore(sql.NotPredicates(p))
}
