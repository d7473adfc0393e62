// Code generated by ent, DO NOT EDIT.

package gateway

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/waddlebot/waddlebot-core/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Gateway {
	return predicate.Gateway(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Gateway {
	return predicate.Gateway(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Gateway {
	return predicate.Gateway(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Gateway {
	return predicate.Gateway(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Gateway {
	return predicate.Gateway(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Gateway {
	return predicate.Gateway(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Gateway {
	return predicate.Gateway(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Gateway {
	return predicate.Gateway(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Gateway {
	return predicate.Gateway(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Gateway {
	return predicate.Gateway(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Gateway {
	return predicate.Gateway(sql.FieldContainsFold(FieldID, id))
}

// ServerID applies equality check predicate on the "server_id" field. It's identical to ServerIDEQ.
func ServerID(v string) predicate.Gateway {
	return predicate.Gateway(sql.FieldEQ(FieldServerID, v))
}

// ChannelID applies equality check predicate on the "channel_id" field. It's identical to ChannelIDEQ.
func ChannelID(v string) predicate.Gateway {
	return predicate.Gateway(sql.FieldEQ(FieldChannelID, v))
}

// CommunityID applies equality check predicate on the "community_id" field. It's identical to CommunityIDEQ.
func CommunityID(v string) predicate.Gateway {
	return predicate.Gateway(sql.FieldEQ(FieldCommunityID, v))
}

// ActivationCode applies equality check predicate on the "activation_code" field. It's identical to ActivationCodeEQ.
func ActivationCode(v string) predicate.Gateway {
	return predicate.Gateway(sql.FieldEQ(FieldActivationCode, v))
}

// Activated applies equality check predicate on the "activated" field. It's identical to ActivatedEQ.
func Activated(v bool) predicate.Gateway {
	return predicate.Gateway(sql.FieldEQ(FieldActivated, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Gateway {
	return predicate.Gateway(sql.FieldEQ(FieldCreatedAt, v))
}

// ActivatedAt applies equality check predicate on the "activated_at" field. It's identical to ActivatedAtEQ.
func ActivatedAt(v time.Time) predicate.Gateway {
	return predicate.Gateway(sql.FieldEQ(FieldActivatedAt, v))
}

// PlatformEQ applies the EQ predicate on the "platform" field.
func PlatformEQ(v Platform) predicate.Gateway {
	return predicate.Gateway(sql.FieldEQ(FieldPlatform, v))
}

// PlatformNEQ applies the NEQ predicate on the "platform" field.
func PlatformNEQ(v Platform) predicate.Gateway {
	return predicate.Gateway(sql.FieldNEQ(FieldPlatform, v))
}

// PlatformIn applies the In predicate on the "platform" field.
func PlatformIn(vs ...Platform) predicate.Gateway {
	return predicate.Gateway(sql.FieldIn(FieldPlatform, vs...))
}

// PlatformNotIn applies the NotIn predicate on the "platform" field.
func PlatformNotIn(vs ...Platform) predicate.Gateway {
	return predicate.Gateway(sql.FieldNotIn(FieldPlatform, vs...))
}

// ServerIDEQ applies the EQ predicate on the "server_id" field.
func ServerIDEQ(v string) predicate.Gateway {
	return predicate.Gateway(sql.FieldEQ(FieldServerID, v))
}

// ServerIDNEQ applies the NEQ predicate on the "server_id" field.
func ServerIDNEQ(v string) predicate.Gateway {
	return predicate.Gateway(sql.FieldNEQ(FieldServerID, v))
}

// ServerIDIn applies the In predicate on the "server_id" field.
func ServerIDIn(vs ...string) predicate.Gateway {
	return predicate.Gateway(sql.FieldIn(FieldServerID, vs...))
}

// ServerIDNotIn applies the NotIn predicate on the "server_id" field.
func ServerIDNotIn(vs ...string) predicate.Gateway {
	return predicate.Gateway(sql.FieldNotIn(FieldServerID, vs...))
}

// ServerIDGT applies the GT predicate on the "server_id" field.
func ServerIDGT(v string) predicate.Gateway {
	return predicate.Gateway(sql.FieldGT(FieldServerID, v))
}

// ServerIDGTE applies the GTE predicate on the "server_id" field.
func ServerIDGTE(v string) predicate.Gateway {
	return predicate.Gateway(sql.FieldGTE(FieldServerID, v))
}

// ServerIDLT applies the LT predicate on the "server_id" field.
func ServerIDLT(v string) predicate.Gateway {
	return predicate.Gateway(sql.FieldLT(FieldServerID, v))
}

// ServerIDLTE applies the LTE predicate on the "server_id" field.
func ServerIDLTE(v string) predicate.Gateway {
	return predicate.Gateway(sql.FieldLTE(FieldServerID, v))
}

// ServerIDContains applies the Contains predicate on the "server_id" field.
func ServerIDContains(v string) predicate.Gateway {
	return predicate.Gateway(sql.FieldContains(FieldServerID, v))
}

// ServerIDHasPrefix applies the HasPrefix predicate on the "server_id" field.
func ServerIDHasPrefix(v string) predicate.Gateway {
	return predicate.Gateway(sql.FieldHasPrefix(FieldServerID, v))
}

// ServerIDHasSuffix applies the HasSuffix predicate on the "server_id" field.
func ServerIDHasSuffix(v string) predicate.Gateway {
	return predicate.Gateway(sql.FieldHasSuffix(FieldServerID, v))
}

// ServerIDEqualFold applies the EqualFold predicate on the "server_id" field.
func ServerIDEqualFold(v string) predicate.Gateway {
	return predicate.Gateway(sql.FieldEqualFold(FieldServerID, v))
}

// ServerIDContainsFold applies the ContainsFold predicate on the "server_id" field.
func ServerIDContainsFold(v string) predicate.Gateway {
	return predicate.Gateway(sql.FieldContainsFold(FieldServerID, v))
}

// ChannelIDEQ applies the EQ predicate on the "channel_id" field.
func ChannelIDEQ(v string) predicate.Gateway {
	return predicate.Gateway(sql.FieldEQ(FieldChannelID, v))
}

// ChannelIDNEQ applies the NEQ predicate on the "channel_id" field.
func ChannelIDNEQ(v string) predicate.Gateway {
	return predicate.Gateway(sql.FieldNEQ(FieldChannelID, v))
}

// ChannelIDIn applies the In predicate on the "channel_id" field.
func ChannelIDIn(vs ...string) predicate.Gateway {
	return predicate.Gateway(sql.FieldIn(FieldChannelID, vs...))
}

// ChannelIDNotIn applies the NotIn predicate on the "channel_id" field.
func ChannelIDNotIn(vs ...string) predicate.Gateway {
	return predicate.Gateway(sql.FieldNotIn(FieldChannelID, vs...))
}

// ChannelIDGT applies the GT predicate on the "channel_id" field.
func ChannelIDGT(v string) predicate.Gateway {
	return predicate.Gateway(sql.FieldGT(FieldChannelID, v))
}

// ChannelIDGTE applies the GTE predicate on the "channel_id" field.
func ChannelIDGTE(v string) predicate.Gateway {
	return predicate.Gateway(sql.FieldGTE(FieldChannelID, v))
}

// ChannelIDLT applies the LT predicate on the "channel_id" field.
func ChannelIDLT(v string) predicate.Gateway {
	return predicate.Gateway(sql.FieldLT(FieldChannelID, v))
}

// ChannelIDLTE applies the LTE predicate on the "channel_id" field.
func ChannelIDLTE(v string) predicate.Gateway {
	return predicate.Gateway(sql.FieldLTE(FieldChannelID, v))
}

// ChannelIDContains applies the Contains predicate on the "channel_id" field.
func ChannelIDContains(v string) predicate.Gateway {
	return predicate.Gateway(sql.FieldContains(FieldChannelID, v))
}

// ChannelIDHasPrefix applies the HasPrefix predicate on the "channel_id" field.
func ChannelIDHasPrefix(v string) predicate.Gateway {
	return predicate.Gateway(sql.FieldHasPrefix(FieldChannelID, v))
}

// ChannelIDHasSuffix applies the HasSuffix predicate on the "channel_id" field.
func ChannelIDHasSuffix(v string) predicate.Gateway {
	return predicate.Gateway(sql.FieldHasSuffix(FieldChannelID, v))
}

// ChannelIDEqualFold applies the EqualFold predicate on the "channel_id" field.
func ChannelIDEqualFold(v string) predicate.Gateway {
	return predicate.Gateway(sql.FieldEqualFold(FieldChannelID, v))
}

// ChannelIDContainsFold applies the ContainsFold predicate on the "channel_id" field.
func ChannelIDContainsFold(v string) predicate.Gateway {
	return predicate.Gateway(sql.FieldContainsFold(FieldChannelID, v))
}

// CommunityIDEQ applies the EQ predicate on the "community_id" field.
func CommunityIDEQ(v string) predicate.Gateway {
	return predicate.Gateway(sql.FieldEQ(FieldCommunityID, v))
}

// CommunityIDNEQ applies the NEQ predicate on the "community_id" field.
func CommunityIDNEQ(v string) predicate.Gateway {
	return predicate.Gateway(sql.FieldNEQ(FieldCommunityID, v))
}

// CommunityIDIn applies the In predicate on the "community_id" field.
func CommunityIDIn(vs ...string) predicate.Gateway {
	return predicate.Gateway(sql.FieldIn(FieldCommunityID, vs...))
}

// CommunityIDNotIn applies the NotIn predicate on the "community_id" field.
func CommunityIDNotIn(vs ...string) predicate.Gateway {
	return predicate.Gateway(sql.FieldNotIn(FieldCommunityID, vs...))
}

// CommunityIDGT applies the GT predicate on the "community_id" field.
func CommunityIDGT(v string) predicate.Gateway {
	return predicate.Gateway(sql.FieldGT(FieldCommunityID, v))
}

// CommunityIDGTE applies the GTE predicate on the "community_id" field.
func CommunityIDGTE(v string) predicate.Gateway {
	return predicate.Gateway(sql.FieldGTE(FieldCommunityID, v))
}

// CommunityIDLT applies the LT predicate on the "community_id" field.
func CommunityIDLT(v string) predicate.Gateway {
	return predicate.Gateway(sql.FieldLT(FieldCommunityID, v))
}

// CommunityIDLTE applies the LTE predicate on the "community_id" field.
func CommunityIDLTE(v string) predicate.Gateway {
	return predicate.Gateway(sql.FieldLTE(FieldCommunityID, v))
}

// CommunityIDContains applies the Contains predicate on the "community_id" field.
func CommunityIDContains(v string) predicate.Gateway {
	return predicate.Gateway(sql.FieldContains(FieldCommunityID, v))
}

// CommunityIDHasPrefix applies the HasPrefix predicate on the "community_id" field.
func CommunityIDHasPrefix(v string) predicate.Gateway {
	return predicate.Gateway(sql.FieldHasPrefix(FieldCommunityID, v))
}

// CommunityIDHasSuffix applies the HasSuffix predicate on the "community_id" field.
func CommunityIDHasSuffix(v string) predicate.Gateway {
	return predicate.Gateway(sql.FieldHasSuffix(FieldCommunityID, v))
}

// CommunityIDEqualFold applies the EqualFold predicate on the "community_id" field.
func CommunityIDEqualFold(v string) predicate.Gateway {
	return predicate.Gateway(sql.FieldEqualFold(FieldCommunityID, v))
}

// CommunityIDContainsFold applies the ContainsFold predicate on the "community_id" field.
func CommunityIDContainsFold(v string) predicate.Gateway {
	return predicate.Gateway(sql.FieldContainsFold(FieldCommunityID, v))
}

// ActivationCodeEQ applies the EQ predicate on the "activation_code" field.
func ActivationCodeEQ(v string) predicate.Gateway {
	return predicate.Gateway(sql.FieldEQ(FieldActivationCode, v))
}

// ActivationCodeNEQ applies the NEQ predicate on the "activation_code" field.
func ActivationCodeNEQ(v string) predicate.Gateway {
	return predicate.Gateway(sql.FieldNEQ(FieldActivationCode, v))
}

// ActivationCodeIn applies the In predicate on the "activation_code" field.
func ActivationCodeIn(vs ...string) predicate.Gateway {
	return predicate.Gateway(sql.FieldIn(FieldActivationCode, vs...))
}

// ActivationCodeNotIn applies the NotIn predicate on the "activation_code" field.
func ActivationCodeNotIn(vs ...string) predicate.Gateway {
	return predicate.Gateway(sql.FieldNotIn(FieldActivationCode, vs...))
}

// ActivationCodeGT applies the GT predicate on the "activation_code" field.
func ActivationCodeGT(v string) predicate.Gateway {
	return predicate.Gateway(sql.FieldGT(FieldActivationCode, v))
}

// ActivationCodeGTE applies the GTE predicate on the "activation_code" field.
func ActivationCodeGTE(v string) predicate.Gateway {
	return predicate.Gateway(sql.FieldGTE(FieldActivationCode, v))
}

// ActivationCodeLT applies the LT predicate on the "activation_code" field.
func ActivationCodeLT(v string) predicate.Gateway {
	return predicate.Gateway(sql.FieldLT(FieldActivationCode, v))
}

// ActivationCodeLTE applies the LTE predicate on the "activation_code" field.
func ActivationCodeLTE(v string) predicate.Gateway {
	return predicate.Gateway(sql.FieldLTE(FieldActivationCode, v))
}

// ActivationCodeContains applies the Contains predicate on the "activation_code" field.
func ActivationCodeContains(v string) predicate.Gateway {
	return predicate.Gateway(sql.FieldContains(FieldActivationCode, v))
}

// ActivationCodeHasPrefix applies the HasPrefix predicate on the "activation_code" field.
func ActivationCodeHasPrefix(v string) predicate.Gateway {
	return predicate.Gateway(sql.FieldHasPrefix(FieldActivationCode, v))
}

// ActivationCodeHasSuffix applies the HasSuffix predicate on the "activation_code" field.
func ActivationCodeHasSuffix(v string) predicate.Gateway {
	return predicate.Gateway(sql.FieldHasSuffix(FieldActivationCode, v))
}

// ActivationCodeEqualFold applies the EqualFold predicate on the "activation_code" field.
func ActivationCodeEqualFold(v string) predicate.Gateway {
	return predicate.Gateway(sql.FieldEqualFold(FieldActivationCode, v))
}

// ActivationCodeContainsFold applies the ContainsFold predicate on the "activation_code" field.
func ActivationCodeContainsFold(v string) predicate.Gateway {
	return predicate.Gateway(sql.FieldContainsFold(FieldActivationCode, v))
}

// ActivatedEQ applies the EQ predicate on the "activated" field.
func ActivatedEQ(v bool) predicate.Gateway {
	return predicate.Gateway(sql.FieldEQ(FieldActivated, v))
}

// ActivatedNEQ applies the NEQ predicate on the "activated" field.
func ActivatedNEQ(v bool) predicate.Gateway {
	return predicate.Gateway(sql.FieldNEQ(FieldActivated, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Gateway {
	return predicate.Gateway(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Gateway {
	return predicate.Gateway(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Gateway {
	return predicate.Gateway(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Gateway {
	return predicate.Gateway(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Gateway {
	return predicate.Gateway(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Gateway {
	return predicate.Gateway(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Gateway {
	return predicate.Gateway(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Gateway {
	return predicate.Gateway(sql.FieldLTE(FieldCreatedAt, v))
}

// ActivatedAtEQ applies the EQ predicate on the "activated_at" field.
func ActivatedAtEQ(v time.Time) predicate.Gateway {
	return predicate.Gateway(sql.FieldEQ(FieldActivatedAt, v))
}

// ActivatedAtNEQ applies the NEQ predicate on the "activated_at" field.
func ActivatedAtNEQ(v time.Time) predicate.Gateway {
	return predicate.Gateway(sql.FieldNEQ(FieldActivatedAt, v))
}

// ActivatedAtIn applies the In predicate on the "activated_at" field.
func ActivatedAtIn(vs ...time.Time) predicate.Gateway {
	return predicate.Gateway(sql.FieldIn(FieldActivatedAt, vs...))
}

// ActivatedAtNotIn applies the NotIn predicate on the "activated_at" field.
func ActivatedAtNotIn(vs ...time.Time) predicate.Gateway {
	return predicate.Gateway(sql.FieldNotIn(FieldActivatedAt, vs...))
}

// ActivatedAtGT applies the GT predicate on the "activated_at" field.
func ActivatedAtGT(v time.Time) predicate.Gateway {
	return predicate.Gateway(sql.FieldGT(FieldActivatedAt, v))
}

// ActivatedAtGTE applies the GTE predicate on the "activated_at" field.
func ActivatedAtGTE(v time.Time) predicate.Gateway {
	return predicate.Gateway(sql.FieldGTE(FieldActivatedAt, v))
}

// ActivatedAtLT applies the LT predicate on the "activated_at" field.
func ActivatedAtLT(v time.Time) predicate.Gateway {
	return predicate.Gateway(sql.FieldLT(FieldActivatedAt, v))
}

// ActivatedAtLTE applies the LTE predicate on the "activated_at" field.
func ActivatedAtLTE(v time.Time) predicate.Gateway {
	return predicate.Gateway(sql.FieldLTE(FieldActivatedAt, v))
}

// ActivatedAtIsNil applies the IsNil predicate on the "activated_at" field.
func ActivatedAtIsNil() predicate.Gateway {
	return predicate.Gateway(sql.FieldIsNull(FieldActivatedAt))
}

// ActivatedAtNotNil applies the NotNil predicate on the "activated_at" field.
func ActivatedAtNotNil() predicate.Gateway {
	return predicate.Gateway(sql.FieldNotNull(FieldActivatedAt))
}

// HasCommunity applies the HasEdge predicate on the "community" edge.
func HasCommunity() predicate.Gateway {
	return predicate.Gateway(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CommunityTable, CommunityColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCommunityWith applies the HasEdge predicate on the "community" edge with a given conditions (other predicates).
func HasCommunityWith(preds ...predicate.Community) predicate.Gateway {
	return predicate.Gateway(func(s *sql.Selector) {
		step := newCommunityStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Gateway) predicate.Gateway {
	return predicate.Gateway(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Gateway) predicate.Gateway {
	return predicate.Gateway(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Gateway) predicate.Gateway {
	return predicate.Gateway(sql.NotPredicates(p))
}
