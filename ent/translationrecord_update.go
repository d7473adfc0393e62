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
	"github.com/waddlebot/waddlebot-core/ent/predicate"
	"github.com/waddlebot/waddlebot-core/ent/translationrecord"
)

// TranslationRecordUpdate is the builder for updating TranslationRecord entities.
type TranslationRecordUpdate struct {
	config
	hooks    []Hook
	mutation *TranslationRecordMutation
}

// Where appends a list predicates to the TranslationRecordUpdate builder.
func (_u *TranslationRecordUpdate) Where(ps ...predicate.TranslationRecord) *TranslationRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSourceHash sets the "source_hash" field.
func (_u *TranslationRecordUpdate) SetSourceHash(v string) *TranslationRecordUpdate {
	_u.mutation.SetSourceHash(v)
	return _u
}

// SetNillableSourceHash sets the "source_hash" field if the given value is not nil.
func (_u *TranslationRecordUpdate) SetNillableSourceHash(v *string) *TranslationRecordUpdate {
	if v != nil {
		_u.SetSourceHash(*v)
	}
	return _u
}

// SetSourceLang sets the "source_lang" field.
func (_u *TranslationRecordUpdate) SetSourceLang(v string) *TranslationRecordUpdate {
	_u.mutation.SetSourceLang(v)
	return _u
}

// SetNillableSourceLang sets the "source_lang" field if the given value is not nil.
func (_u *TranslationRecordUpdate) SetNillableSourceLang(v *string) *TranslationRecordUpdate {
	if v != nil {
		_u.SetSourceLang(*v)
	}
	return _u
}

// SetTargetLang sets the "target_lang" field.
func (_u *TranslationRecordUpdate) SetTargetLang(v string) *TranslationRecordUpdate {
	_u.mutation.SetTargetLang(v)
	return _u
}

// SetNillableTargetLang sets the "target_lang" field if the given value is not nil.
func (_u *TranslationRecordUpdate) SetNillableTargetLang(v *string) *TranslationRecordUpdate {
	if v != nil {
		_u.SetTargetLang(*v)
	}
	return _u
}

// SetTranslatedText sets the "translated_text" field.
func (_u *TranslationRecordUpdate) SetTranslatedText(v string) *TranslationRecordUpdate {
	_u.mutation.SetTranslatedText(v)
	return _u
}

// SetNillableTranslatedText sets the "translated_text" field if the given value is not nil.
func (_u *TranslationRecordUpdate) SetNillableTranslatedText(v *string) *TranslationRecordUpdate {
	if v != nil {
		_u.SetTranslatedText(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *TranslationRecordUpdate) SetProvider(v string) *TranslationRecordUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *TranslationRecordUpdate) SetNillableProvider(v *string) *TranslationRecordUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *TranslationRecordUpdate) SetConfidence(v float64) *TranslationRecordUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *TranslationRecordUpdate) SetNillableConfidence(v *float64) *TranslationRecordUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *TranslationRecordUpdate) AddConfidence(v float64) *TranslationRecordUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetAccessCount sets the "access_count" field.
func (_u *TranslationRecordUpdate) SetAccessCount(v int) *TranslationRecordUpdate {
	_u.mutation.ResetAccessCount()
	_u.mutation.SetAccessCount(v)
	return _u
}

// SetNillableAccessCount sets the "access_count" field if the given value is not nil.
func (_u *TranslationRecordUpdate) SetNillableAccessCount(v *int) *TranslationRecordUpdate {
	if v != nil {
		_u.SetAccessCount(*v)
	}
	return _u
}

// AddAccessCount adds value to the "access_count" field.
func (_u *TranslationRecordUpdate) AddAccessCount(v int) *TranslationRecordUpdate {
	_u.mutation.AddAccessCount(v)
	return _u
}

// SetLastAccessed sets the "last_accessed" field.
func (_u *TranslationRecordUpdate) SetLastAccessed(v time.Time) *TranslationRecordUpdate {
	_u.mutation.SetLastAccessed(v)
	return _u
}

// SetNillableLastAccessed sets the "last_accessed" field if the given value is not nil.
func (_u *TranslationRecordUpdate) SetNillableLastAccessed(v *time.Time) *TranslationRecordUpdate {
	if v != nil {
		_u.SetLastAccessed(*v)
	}
	return _u
}

// Mutation returns the TranslationRecordMutation object of the builder.
func (_u *TranslationRecordUpdate) Mutation() *TranslationRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TranslationRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TranslationRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TranslationRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TranslationRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TranslationRecordUpdate) check() error {
	if v, ok := _u.mutation.SourceHash(); ok {
		if err := translationrecord.SourceHashValidator(v); err != nil {
			return &ValidationError{Name: "source_hash", err: fmt.Errorf(`ent: validator failed for field "TranslationRecord.source_hash": %w`, err)}
		}
	}
	return nil
}

func (_u *TranslationRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(translationrecord.Table, translationrecord.Columns, sqlgraph.NewFieldSpec(translationrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SourceHash(); ok {
		_spec.SetField(translationrecord.FieldSourceHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceLang(); ok {
		_spec.SetField(translationrecord.FieldSourceLang, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetLang(); ok {
		_spec.SetField(translationrecord.FieldTargetLang, field.TypeString, value)
	}
	if value, ok := _u.mutation.TranslatedText(); ok {
		_spec.SetField(translationrecord.FieldTranslatedText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(translationrecord.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(translationrecord.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(translationrecord.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AccessCount(); ok {
		_spec.SetField(translationrecord.FieldAccessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAccessCount(); ok {
		_spec.AddField(translationrecord.FieldAccessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastAccessed(); ok {
		_spec.SetField(translationrecord.FieldLastAccessed, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{translationrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TranslationRecordUpdateOne is the builder for updating a single TranslationRecord entity.
type TranslationRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TranslationRecordMutation
}

// SetSourceHash sets the "source_hash" field.
func (_u *TranslationRecordUpdateOne) SetSourceHash(v string) *TranslationRecordUpdateOne {
	_u.mutation.SetSourceHash(v)
	return _u
}

// SetNillableSourceHash sets the "source_hash" field if the given value is not nil.
func (_u *TranslationRecordUpdateOne) SetNillableSourceHash(v *string) *TranslationRecordUpdateOne {
	if v != nil {
		_u.SetSourceHash(*v)
	}
	return _u
}

// SetSourceLang sets the "source_lang" field.
func (_u *TranslationRecordUpdateOne) SetSourceLang(v string) *TranslationRecordUpdateOne {
	_u.mutation.SetSourceLang(v)
	return _u
}

// SetNillableSourceLang sets the "source_lang" field if the given value is not nil.
func (_u *TranslationRecordUpdateOne) SetNillableSourceLang(v *string) *TranslationRecordUpdateOne {
	if v != nil {
		_u.SetSourceLang(*v)
	}
	return _u
}

// SetTargetLang sets the "target_lang" field.
func (_u *TranslationRecordUpdateOne) SetTargetLang(v string) *TranslationRecordUpdateOne {
	_u.mutation.SetTargetLang(v)
	return _u
}

// SetNillableTargetLang sets the "target_lang" field if the given value is not nil.
func (_u *TranslationRecordUpdateOne) SetNillableTargetLang(v *string) *TranslationRecordUpdateOne {
	if v != nil {
		_u.SetTargetLang(*v)
	}
	return _u
}

// SetTranslatedText sets the "translated_text" field.
func (_u *TranslationRecordUpdateOne) SetTranslatedText(v string) *TranslationRecordUpdateOne {
	_u.mutation.SetTranslatedText(v)
	return _u
}

// SetNillableTranslatedText sets the "translated_text" field if the given value is not nil.
func (_u *TranslationRecordUpdateOne) SetNillableTranslatedText(v *string) *TranslationRecordUpdateOne {
	if v != nil {
		_u.SetTranslatedText(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *TranslationRecordUpdateOne) SetProvider(v string) *TranslationRecordUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *TranslationRecordUpdateOne) SetNillableProvider(v *string) *TranslationRecordUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *TranslationRecordUpdateOne) SetConfidence(v float64) *TranslationRecordUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *TranslationRecordUpdateOne) SetNillableConfidence(v *float64) *TranslationRecordUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *TranslationRecordUpdateOne) AddConfidence(v float64) *TranslationRecordUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetAccessCount sets the "access_count" field.
func (_u *TranslationRecordUpdateOne) SetAccessCount(v int) *TranslationRecordUpdateOne {
	_u.mutation.ResetAccessCount()
	_u.mutation.SetAccessCount(v)
	return _u
}

// SetNillableAccessCount sets the "access_count" field if the given value is not nil.
func (_u *TranslationRecordUpdateOne) SetNillableAccessCount(v *int) *TranslationRecordUpdateOne {
	if v != nil {
		_u.SetAccessCount(*v)
	}
	return _u
}

// AddAccessCount adds value to the "access_count" field.
func (_u *TranslationRecordUpdateOne) AddAccessCount(v int) *TranslationRecordUpdateOne {
	_u.mutation.AddAccessCount(v)
	return _u
}

// SetLastAccessed sets the "last_accessed" field.
func (_u *TranslationRecordUpdateOne) SetLastAccessed(v time.Time) *TranslationRecordUpdateOne {
	_u.mutation.SetLastAccessed(v)
	return _u
}

// SetNillableLastAccessed sets the "last_accessed" field if the given value is not nil.
func (_u *TranslationRecordUpdateOne) SetNillableLastAccessed(v *time.Time) *TranslationRecordUpdateOne {
	if v != nil {
		_u.SetLastAccessed(*v)
	}
	return _u
}

// Mutation returns the TranslationRecordMutation object of the builder.
func (_u *TranslationRecordUpdateOne) Mutation() *TranslationRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the TranslationRecordUpdate builder.
func (_u *TranslationRecordUpdateOne) Where(ps ...predicate.TranslationRecord) *TranslationRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TranslationRecordUpdateOne) Select(field string, fields ...string) *TranslationRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TranslationRecord entity.
func (_u *TranslationRecordUpdateOne) Save(ctx context.Context) (*TranslationRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TranslationRecordUpdateOne) SaveX(ctx context.Context) *TranslationRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TranslationRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TranslationRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TranslationRecordUpdateOne) check() error {
	if v, ok := _u.mutation.SourceHash(); ok {
		if err := translationrecord.SourceHashValidator(v); err != nil {
			return &ValidationError{Name: "source_hash", err: fmt.Errorf(`ent: validator failed for field "TranslationRecord.source_hash": %w`, err)}
		}
	}
	return nil
}

func (_u *TranslationRecordUpdateOne) sqlSave(ctx context.Context) (_node *TranslationRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(translationrecord.Table, translationrecord.Columns, sqlgraph.NewFieldSpec(translationrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TranslationRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, translationrecord.FieldID)
		for _, f := range fields {
			if !translationrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != translationrecord.FieldID {
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
	if value, ok := _u.mutation.SourceHash(); ok {
		_spec.SetField(translationrecord.FieldSourceHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceLang(); ok {
		_spec.SetField(translationrecord.FieldSourceLang, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetLang(); ok {
		_spec.SetField(translationrecord.FieldTargetLang, field.TypeString, value)
	}
	if value, ok := _u.mutation.TranslatedText(); ok {
		_spec.SetField(translationrecord.FieldTranslatedText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(translationrecord.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(translationrecord.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(translationrecord.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AccessCount(); ok {
		_spec.SetField(translationrecord.FieldAccessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAccessCount(); ok {
		_spec.AddField(translationrecord.FieldAccessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastAccessed(); ok {
		_spec.SetField(translationrecord.FieldLastAccessed, field.TypeTime, value)
	}
	_node = &TranslationRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{translationrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
