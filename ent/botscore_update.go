// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/waddlebot/waddlebot-core/ent/botscore"
	"github.com/waddlebot/waddlebot-core/ent/community"
	"github.com/waddlebot/waddlebot-core/ent/predicate"
)

// BotScoreUpdate is the builder for updating BotScore entities.
type BotScoreUpdate struct {
	config
	hooks    []Hook
	mutation *BotScoreMutation
}

// Where appends a list predicates to the BotScoreUpdate builder.
func (_u *BotScoreUpdate) Where(ps ...predicate.BotScore) *BotScoreUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCommunityID sets the "community_id" field.
func (_u *BotScoreUpdate) SetCommunityID(v string) *BotScoreUpdate {
	_u.mutation.SetCommunityID(v)
	return _u
}

// SetNillableCommunityID sets the "community_id" field if the given value is not nil.
func (_u *BotScoreUpdate) SetNillableCommunityID(v *string) *BotScoreUpdate {
	if v != nil {
		_u.SetCommunityID(*v)
	}
	return _u
}

// SetOverall sets the "overall" field.
func (_u *BotScoreUpdate) SetOverall(v int) *BotScoreUpdate {
	_u.mutation.ResetOverall()
	_u.mutation.SetOverall(v)
	return _u
}

// SetNillableOverall sets the "overall" field if the given value is not nil.
func (_u *BotScoreUpdate) SetNillableOverall(v *int) *BotScoreUpdate {
	if v != nil {
		_u.SetOverall(*v)
	}
	return _u
}

// AddOverall adds value to the "overall" field.
func (_u *BotScoreUpdate) AddOverall(v int) *BotScoreUpdate {
	_u.mutation.AddOverall(v)
	return _u
}

// SetGrade sets the "grade" field.
func (_u *BotScoreUpdate) SetGrade(v string) *BotScoreUpdate {
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *BotScoreUpdate) SetNillableGrade(v *string) *BotScoreUpdate {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// SetSizeCategory sets the "size_category" field.
func (_u *BotScoreUpdate) SetSizeCategory(v botscore.SizeCategory) *BotScoreUpdate {
	_u.mutation.SetSizeCategory(v)
	return _u
}

// SetNillableSizeCategory sets the "size_category" field if the given value is not nil.
func (_u *BotScoreUpdate) SetNillableSizeCategory(v *botscore.SizeCategory) *BotScoreUpdate {
	if v != nil {
		_u.SetSizeCategory(*v)
	}
	return _u
}

// SetBadActorScore sets the "bad_actor_score" field.
func (_u *BotScoreUpdate) SetBadActorScore(v float64) *BotScoreUpdate {
	_u.mutation.ResetBadActorScore()
	_u.mutation.SetBadActorScore(v)
	return _u
}

// SetNillableBadActorScore sets the "bad_actor_score" field if the given value is not nil.
func (_u *BotScoreUpdate) SetNillableBadActorScore(v *float64) *BotScoreUpdate {
	if v != nil {
		_u.SetBadActorScore(*v)
	}
	return _u
}

// AddBadActorScore adds value to the "bad_actor_score" field.
func (_u *BotScoreUpdate) AddBadActorScore(v float64) *BotScoreUpdate {
	_u.mutation.AddBadActorScore(v)
	return _u
}

// SetReputationScore sets the "reputation_score" field.
func (_u *BotScoreUpdate) SetReputationScore(v float64) *BotScoreUpdate {
	_u.mutation.ResetReputationScore()
	_u.mutation.SetReputationScore(v)
	return _u
}

// SetNillableReputationScore sets the "reputation_score" field if the given value is not nil.
func (_u *BotScoreUpdate) SetNillableReputationScore(v *float64) *BotScoreUpdate {
	if v != nil {
		_u.SetReputationScore(*v)
	}
	return _u
}

// AddReputationScore adds value to the "reputation_score" field.
func (_u *BotScoreUpdate) AddReputationScore(v float64) *BotScoreUpdate {
	_u.mutation.AddReputationScore(v)
	return _u
}

// SetSecurityScore sets the "security_score" field.
func (_u *BotScoreUpdate) SetSecurityScore(v float64) *BotScoreUpdate {
	_u.mutation.ResetSecurityScore()
	_u.mutation.SetSecurityScore(v)
	return _u
}

// SetNillableSecurityScore sets the "security_score" field if the given value is not nil.
func (_u *BotScoreUpdate) SetNillableSecurityScore(v *float64) *BotScoreUpdate {
	if v != nil {
		_u.SetSecurityScore(*v)
	}
	return _u
}

// AddSecurityScore adds value to the "security_score" field.
func (_u *BotScoreUpdate) AddSecurityScore(v float64) *BotScoreUpdate {
	_u.mutation.AddSecurityScore(v)
	return _u
}

// SetAiBehavioralScore sets the "ai_behavioral_score" field.
func (_u *BotScoreUpdate) SetAiBehavioralScore(v float64) *BotScoreUpdate {
	_u.mutation.ResetAiBehavioralScore()
	_u.mutation.SetAiBehavioralScore(v)
	return _u
}

// SetNillableAiBehavioralScore sets the "ai_behavioral_score" field if the given value is not nil.
func (_u *BotScoreUpdate) SetNillableAiBehavioralScore(v *float64) *BotScoreUpdate {
	if v != nil {
		_u.SetAiBehavioralScore(*v)
	}
	return _u
}

// AddAiBehavioralScore adds value to the "ai_behavioral_score" field.
func (_u *BotScoreUpdate) AddAiBehavioralScore(v float64) *BotScoreUpdate {
	_u.mutation.AddAiBehavioralScore(v)
	return _u
}

// SetWeights sets the "weights" field.
func (_u *BotScoreUpdate) SetWeights(v map[string]float64) *BotScoreUpdate {
	_u.mutation.SetWeights(v)
	return _u
}

// SetCalculatedAt sets the "calculated_at" field.
func (_u *BotScoreUpdate) SetCalculatedAt(v time.Time) *BotScoreUpdate {
	_u.mutation.SetCalculatedAt(v)
	return _u
}

// SetNillableCalculatedAt sets the "calculated_at" field if the given value is not nil.
func (_u *BotScoreUpdate) SetNillableCalculatedAt(v *time.Time) *BotScoreUpdate {
	if v != nil {
		_u.SetCalculatedAt(*v)
	}
	return _u
}

// SetNextRecalculation sets the "next_recalculation" field.
func (_u *BotScoreUpdate) SetNextRecalculation(v time.Time) *BotScoreUpdate {
	_u.mutation.SetNextRecalculation(v)
	return _u
}

// SetNillableNextRecalculation sets the "next_recalculation" field if the given value is not nil.
func (_u *BotScoreUpdate) SetNillableNextRecalculation(v *time.Time) *BotScoreUpdate {
	if v != nil {
		_u.SetNextRecalculation(*v)
	}
	return _u
}

// SetCommunity sets the "community" edge to the Community entity.
func (_u *BotScoreUpdate) SetCommunity(v *Community) *BotScoreUpdate {
	return _u.SetCommunityID(v.ID)
}

// Mutation returns the BotScoreMutation object of the builder.
func (_u *BotScoreUpdate) Mutation() *BotScoreMutation {
	return _u.mutation
}

// ClearCommunity clears the "community" edge to the Community entity.
func (_u *BotScoreUpdate) ClearCommunity() *BotScoreUpdate {
	_u.mutation.ClearCommunity()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BotScoreUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BotScoreUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BotScoreUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BotScoreUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BotScoreUpdate) check() error {
	if v, ok := _u.mutation.Grade(); ok {
		if err := botscore.GradeValidator(v); err != nil {
			return &ValidationError{Name: "grade", err: fmt.Errorf(`ent: validator failed for field "BotScore.grade": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SizeCategory(); ok {
		if err := botscore.SizeCategoryValidator(v); err != nil {
			return &ValidationError{Name: "size_category", err: fmt.Errorf(`ent: validator failed for field "BotScore.size_category": %w`, err)}
		}
	}
	if _u.mutation.CommunityCleared() && len(_u.mutation.CommunityIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BotScore.community"`)
	}
	return nil
}

func (_u *BotScoreUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(botscore.Table, botscore.Columns, sqlgraph.NewFieldSpec(botscore.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Overall(); ok {
		_spec.SetField(botscore.FieldOverall, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOverall(); ok {
		_spec.AddField(botscore.FieldOverall, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(botscore.FieldGrade, field.TypeString, value)
	}
	if value, ok := _u.mutation.SizeCategory(); ok {
		_spec.SetField(botscore.FieldSizeCategory, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BadActorScore(); ok {
		_spec.SetField(botscore.FieldBadActorScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBadActorScore(); ok {
		_spec.AddField(botscore.FieldBadActorScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ReputationScore(); ok {
		_spec.SetField(botscore.FieldReputationScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedReputationScore(); ok {
		_spec.AddField(botscore.FieldReputationScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SecurityScore(); ok {
		_spec.SetField(botscore.FieldSecurityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSecurityScore(); ok {
		_spec.AddField(botscore.FieldSecurityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AiBehavioralScore(); ok {
		_spec.SetField(botscore.FieldAiBehavioralScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAiBehavioralScore(); ok {
		_spec.AddField(botscore.FieldAiBehavioralScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Weights(); ok {
		_spec.SetField(botscore.FieldWeights, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.CalculatedAt(); ok {
		_spec.SetField(botscore.FieldCalculatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.NextRecalculation(); ok {
		_spec.SetField(botscore.FieldNextRecalculation, field.TypeTime, value)
	}
	if _u.mutation.CommunityCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   botscore.CommunityTable,
			Columns: []string{botscore.CommunityColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(community.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CommunityIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   botscore.CommunityTable,
			Columns: []string{botscore.CommunityColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(community.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{botscore.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BotScoreUpdateOne is the builder for updating a single BotScore entity.
type BotScoreUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BotScoreMutation
}

// SetCommunityID sets the "community_id" field.
func (_u *BotScoreUpdateOne) SetCommunityID(v string) *BotScoreUpdateOne {
	_u.mutation.SetCommunityID(v)
	return _u
}

// SetNillableCommunityID sets the "community_id" field if the given value is not nil.
func (_u *BotScoreUpdateOne) SetNillableCommunityID(v *string) *BotScoreUpdateOne {
	if v != nil {
		_u.SetCommunityID(*v)
	}
	return _u
}

// SetOverall sets the "overall" field.
func (_u *BotScoreUpdateOne) SetOverall(v int) *BotScoreUpdateOne {
	_u.mutation.ResetOverall()
	_u.mutation.SetOverall(v)
	return _u
}

// SetNillableOverall sets the "overall" field if the given value is not nil.
func (_u *BotScoreUpdateOne) SetNillableOverall(v *int) *BotScoreUpdateOne {
	if v != nil {
		_u.SetOverall(*v)
	}
	return _u
}

// AddOverall adds value to the "overall" field.
func (_u *BotScoreUpdateOne) AddOverall(v int) *BotScoreUpdateOne {
	_u.mutation.AddOverall(v)
	return _u
}

// SetGrade sets the "grade" field.
func (_u *BotScoreUpdateOne) SetGrade(v string) *BotScoreUpdateOne {
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *BotScoreUpdateOne) SetNillableGrade(v *string) *BotScoreUpdateOne {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// SetSizeCategory sets the "size_category" field.
func (_u *BotScoreUpdateOne) SetSizeCategory(v botscore.SizeCategory) *BotScoreUpdateOne {
	_u.mutation.SetSizeCategory(v)
	return _u
}

// SetNillableSizeCategory sets the "size_category" field if the given value is not nil.
func (_u *BotScoreUpdateOne) SetNillableSizeCategory(v *botscore.SizeCategory) *BotScoreUpdateOne {
	if v != nil {
		_u.SetSizeCategory(*v)
	}
	return _u
}

// SetBadActorScore sets the "bad_actor_score" field.
func (_u *BotScoreUpdateOne) SetBadActorScore(v float64) *BotScoreUpdateOne {
	_u.mutation.ResetBadActorScore()
	_u.mutation.SetBadActorScore(v)
	return _u
}

// SetNillableBadActorScore sets the "bad_actor_score" field if the given value is not nil.
func (_u *BotScoreUpdateOne) SetNillableBadActorScore(v *float64) *BotScoreUpdateOne {
	if v != nil {
		_u.SetBadActorScore(*v)
	}
	return _u
}

// AddBadActorScore adds value to the "bad_actor_score" field.
func (_u *BotScoreUpdateOne) AddBadActorScore(v float64) *BotScoreUpdateOne {
	_u.mutation.AddBadActorScore(v)
	return _u
}

// SetReputationScore sets the "reputation_score" field.
func (_u *BotScoreUpdateOne) SetReputationScore(v float64) *BotScoreUpdateOne {
	_u.mutation.ResetReputationScore()
	_u.mutation.SetReputationScore(v)
	return _u
}

// SetNillableReputationScore sets the "reputation_score" field if the given value is not nil.
func (_u *BotScoreUpdateOne) SetNillableReputationScore(v *float64) *BotScoreUpdateOne {
	if v != nil {
		_u.SetReputationScore(*v)
	}
	return _u
}

// AddReputationScore adds value to the "reputation_score" field.
func (_u *BotScoreUpdateOne) AddReputationScore(v float64) *BotScoreUpdateOne {
	_u.mutation.AddReputationScore(v)
	return _u
}

// SetSecurityScore sets the "security_score" field.
func (_u *BotScoreUpdateOne) SetSecurityScore(v float64) *BotScoreUpdateOne {
	_u.mutation.ResetSecurityScore()
	_u.mutation.SetSecurityScore(v)
	return _u
}

// SetNillableSecurityScore sets the "security_score" field if the given value is not nil.
func (_u *BotScoreUpdateOne) SetNillableSecurityScore(v *float64) *BotScoreUpdateOne {
	if v != nil {
		_u.SetSecurityScore(*v)
	}
	return _u
}

// AddSecurityScore adds value to the "security_score" field.
func (_u *BotScoreUpdateOne) AddSecurityScore(v float64) *BotScoreUpdateOne {
	_u.mutation.AddSecurityScore(v)
	return _u
}

// SetAiBehavioralScore sets the "ai_behavioral_score" field.
func (_u *BotScoreUpdateOne) SetAiBehavioralScore(v float64) *BotScoreUpdateOne {
	_u.mutation.ResetAiBehavioralScore()
	_u.mutation.SetAiBehavioralScore(v)
	return _u
}

// SetNillableAiBehavioralScore sets the "ai_behavioral_score" field if the given value is not nil.
func (_u *BotScoreUpdateOne) SetNillableAiBehavioralScore(v *float64) *BotScoreUpdateOne {
	if v != nil {
		_u.SetAiBehavioralScore(*v)
	}
	return _u
}

// AddAiBehavioralScore adds value to the "ai_behavioral_score" field.
func (_u *BotScoreUpdateOne) AddAiBehavioralScore(v float64) *BotScoreUpdateOne {
	_u.mutation.AddAiBehavioralScore(v)
	return _u
}

// SetWeights sets the "weights" field.
func (_u *BotScoreUpdateOne) SetWeights(v map[string]float64) *BotScoreUpdateOne {
	_u.mutation.SetWeights(v)
	return _u
}

// SetCalculatedAt sets the "calculated_at" field.
func (_u *BotScoreUpdateOne) SetCalculatedAt(v time.Time) *BotScoreUpdateOne {
	_u.mutation.SetCalculatedAt(v)
	return _u
}

// SetNillableCalculatedAt sets the "calculated_at" field if the given value is not nil.
func (_u *BotScoreUpdateOne) SetNillableCalculatedAt(v *time.Time) *BotScoreUpdateOne {
	if v != nil {
		_u.SetCalculatedAt(*v)
	}
	return _u
}

// SetNextRecalculation sets the "next_recalculation" field.
func (_u *BotScoreUpdateOne) SetNextRecalculation(v time.Time) *BotScoreUpdateOne {
	_u.mutation.SetNextRecalculation(v)
	return _u
}

// SetNillableNextRecalculation sets the "next_recalculation" field if the given value is not nil.
func (_u *BotScoreUpdateOne) SetNillableNextRecalculation(v *time.Time) *BotScoreUpdateOne {
	if v != nil {
		_u.SetNextRecalculation(*v)
	}
	return _u
}

// SetCommunity sets the "community" edge to the Community entity.
func (_u *BotScoreUpdateOne) SetCommunity(v *Community) *BotScoreUpdateOne {
	return _u.SetCommunityID(v.ID)
}

// Mutation returns the BotScoreMutation object of the builder.
func (_u *BotScoreUpdateOne) Mutation() *BotScoreMutation {
	return _u.mutation
}

// ClearCommunity clears the "community" edge to the Community entity.
func (_u *BotScoreUpdateOne) ClearCommunity() *BotScoreUpdateOne {
	_u.mutation.ClearCommunity()
	return _u
}

// Where appends a list predicates to the BotScoreUpdate builder.
func (_u *BotScoreUpdateOne) Where(ps ...predicate.BotScore) *BotScoreUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BotScoreUpdateOne) Select(field string, fields ...string) *BotScoreUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BotScore entity.
func (_u *BotScoreUpdateOne) Save(ctx context.Context) (*BotScore, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BotScoreUpdateOne) SaveX(ctx context.Context) *BotScore {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BotScoreUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BotScoreUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BotScoreUpdateOne) check() error {
	if v, ok := _u.mutation.Grade(); ok {
		if err := botscore.GradeValidator(v); err != nil {
			return &ValidationError{Name: "grade", err: fmt.Errorf(`ent: validator failed for field "BotScore.grade": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SizeCategory(); ok {
		if err := botscore.SizeCategoryValidator(v); err != nil {
			return &ValidationError{Name: "size_category", err: fmt.Errorf(`ent: validator failed for field "BotScore.size_category": %w`, err)}
		}
	}
	if _u.mutation.CommunityCleared() && len(_u.mutation.CommunityIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BotScore.community"`)
	}
	return nil
}

func (_u *BotScoreUpdateOne) sqlSave(ctx context.Context) (_node *BotScore, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(botscore.Table, botscore.Columns, sqlgraph.NewFieldSpec(botscore.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BotScore.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, botscore.FieldID)
		for _, f := range fields {
			if !botscore.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != botscore.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Overall(); ok {
		_spec.SetField(botscore.FieldOverall, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOverall(); ok {
		_spec.AddField(botscore.FieldOverall, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(botscore.FieldGrade, field.TypeString, value)
	}
	if value, ok := _u.mutation.SizeCategory(); ok {
		_spec.SetField(botscore.FieldSizeCategory, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BadActorScore(); ok {
		_spec.SetField(botscore.FieldBadActorScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBadActorScore(); ok {
		_spec.AddField(botscore.FieldBadActorScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ReputationScore(); ok {
		_spec.SetField(botscore.FieldReputationScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedReputationScore(); ok {
		_spec.AddField(botscore.FieldReputationScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SecurityScore(); ok {
		_spec.SetField(botscore.FieldSecurityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSecurityScore(); ok {
		_spec.AddField(botscore.FieldSecurityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AiBehavioralScore(); ok {
		_spec.SetField(botscore.FieldAiBehavioralScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAiBehavioralScore(); ok {
		_spec.AddField(botscore.FieldAiBehavioralScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Weights(); ok {
		_spec.SetField(botscore.FieldWeights, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.CalculatedAt(); ok {
		_spec.SetField(botscore.FieldCalculatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.NextRecalculation(); ok {
		_spec.SetField(botscore.FieldNextRecalculation, field.TypeTime, value)
	}
	if _u.mutation.CommunityCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   botscore.CommunityTable,
			Columns: []string{botscore.CommunityColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(community.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CommunityIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   botscore.CommunityTable,
			Columns: []string{botscore.CommunityColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(community.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &BotScore{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{botscore.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
