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
	"github.com/waddlebot/waddlebot-core/ent/translationrecord"
)

// TranslationRecordCreate is the builder for creating a TranslationRecord entity.
type TranslationRecordCreate struct {
	config
	mutation *TranslationRecordMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSourceHash sets the "source_hash" field.
func (_c *TranslationRecordCreate) SetSourceHash(v string) *TranslationRecordCreate {
	_c.mutation.SetSourceHash(v)
	return _c
}

// SetSourceLang sets the "source_lang" field.
func (_c *TranslationRecordCreate) SetSourceLang(v string) *TranslationRecordCreate {
	_c.mutation.SetSourceLang(v)
	return _c
}

// SetTargetLang sets the "target_lang" field.
func (_c *TranslationRecordCreate) SetTargetLang(v string) *TranslationRecordCreate {
	_c.mutation.SetTargetLang(v)
	return _c
}

// SetTranslatedText sets the "translated_text" field.
func (_c *TranslationRecordCreate) SetTranslatedText(v string) *TranslationRecordCreate {
	_c.mutation.SetTranslatedText(v)
	return _c
}

// SetProvider sets the "provider" field.
func (_c *TranslationRecordCreate) SetProvider(v string) *TranslationRecordCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *TranslationRecordCreate) SetConfidence(v float64) *TranslationRecordCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TranslationRecordCreate) SetCreatedAt(v time.Time) *TranslationRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TranslationRecordCreate) SetNillableCreatedAt(v *time.Time) *TranslationRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetAccessCount sets the "access_count" field.
func (_c *TranslationRecordCreate) SetAccessCount(v int) *TranslationRecordCreate {
	_c.mutation.SetAccessCount(v)
	return _c
}

// SetNillableAccessCount sets the "access_count" field if the given value is not nil.
func (_c *TranslationRecordCreate) SetNillableAccessCount(v *int) *TranslationRecordCreate {
	if v != nil {
		_c.SetAccessCount(*v)
	}
	return _c
}

// SetLastAccessed sets the "last_accessed" field.
func (_c *TranslationRecordCreate) SetLastAccessed(v time.Time) *TranslationRecordCreate {
	_c.mutation.SetLastAccessed(v)
	return _c
}

// SetNillableLastAccessed sets the "last_accessed" field if the given value is not nil.
func (_c *TranslationRecordCreate) SetNillableLastAccessed(v *time.Time) *TranslationRecordCreate {
	if v != nil {
		_c.SetLastAccessed(*v)
	}
	return _c
}

// Mutation returns the TranslationRecordMutation object of the builder.
func (_c *TranslationRecordCreate) Mutation() *TranslationRecordMutation {
	return _c.mutation
}

// Save creates the TranslationRecord in the database.
func (_c *TranslationRecordCreate) Save(ctx context.Context) (*TranslationRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TranslationRecordCreate) SaveX(ctx context.Context) *TranslationRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TranslationRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TranslationRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TranslationRecordCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := translationrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.AccessCount(); !ok {
		v := translationrecord.DefaultAccessCount
		_c.mutation.SetAccessCount(v)
	}
	if _, ok := _c.mutation.LastAccessed(); !ok {
		v := translationrecord.DefaultLastAccessed()
		_c.mutation.SetLastAccessed(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TranslationRecordCreate) check() error {
	if _, ok := _c.mutation.SourceHash(); !ok {
		return &ValidationError{Name: "source_hash", err: errors.New(`ent: missing required field "TranslationRecord.source_hash"`)}
	}
	if v, ok := _c.mutation.SourceHash(); ok {
		if err := translationrecord.SourceHashValidator(v); err != nil {
			return &ValidationError{Name: "source_hash", err: fmt.Errorf(`ent: validator failed for field "TranslationRecord.source_hash": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SourceLang(); !ok {
		return &ValidationError{Name: "source_lang", err: errors.New(`ent: missing required field "TranslationRecord.source_lang"`)}
	}
	if _, ok := _c.mutation.TargetLang(); !ok {
		return &ValidationError{Name: "target_lang", err: errors.New(`ent: missing required field "TranslationRecord.target_lang"`)}
	}
	if _, ok := _c.mutation.TranslatedText(); !ok {
		return &ValidationError{Name: "translated_text", err: errors.New(`ent: missing required field "TranslationRecord.translated_text"`)}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "TranslationRecord.provider"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "TranslationRecord.confidence"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TranslationRecord.created_at"`)}
	}
	if _, ok := _c.mutation.AccessCount(); !ok {
		return &ValidationError{Name: "access_count", err: errors.New(`ent: missing required field "TranslationRecord.access_count"`)}
	}
	if _, ok := _c.mutation.LastAccessed(); !ok {
		return &ValidationError{Name: "last_accessed", err: errors.New(`ent: missing required field "TranslationRecord.last_accessed"`)}
	}
	return nil
}

func (_c *TranslationRecordCreate) sqlSave(ctx context.Context) (*TranslationRecord, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TranslationRecordCreate) createSpec() (*TranslationRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &TranslationRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(translationrecord.Table, sqlgraph.NewFieldSpec(translationrecord.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.SourceHash(); ok {
		_spec.SetField(translationrecord.FieldSourceHash, field.TypeString, value)
		_node.SourceHash = value
	}
	if value, ok := _c.mutation.SourceLang(); ok {
		_spec.SetField(translationrecord.FieldSourceLang, field.TypeString, value)
		_node.SourceLang = value
	}
	if value, ok := _c.mutation.TargetLang(); ok {
		_spec.SetField(translationrecord.FieldTargetLang, field.TypeString, value)
		_node.TargetLang = value
	}
	if value, ok := _c.mutation.TranslatedText(); ok {
		_spec.SetField(translationrecord.FieldTranslatedText, field.TypeString, value)
		_node.TranslatedText = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(translationrecord.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(translationrecord.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(translationrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.AccessCount(); ok {
		_spec.SetField(translationrecord.FieldAccessCount, field.TypeInt, value)
		_node.AccessCount = value
	}
	if value, ok := _c.mutation.LastAccessed(); ok {
		_spec.SetField(translationrecord.FieldLastAccessed, field.TypeTime, value)
		_node.LastAccessed = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TranslationRecord.Create().
//		SetSourceHash(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TranslationRecordUpsert) {
//			SetSourceHash(v+v).
//		}).
//		Exec(ctx)
func (_c *TranslationRecordCreate) OnConflict(opts ...sql.ConflictOption) *TranslationRecordUpsertOne {
	_c.conflict = opts
	return &TranslationRecordUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TranslationRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TranslationRecordCreate) OnConflictColumns(columns ...string) *TranslationRecordUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TranslationRecordUpsertOne{
		create: _c,
	}
}

type (
	// TranslationRecordUpsertOne is the builder for "upsert"-ing
	//  one TranslationRecord node.
	TranslationRecordUpsertOne struct {
		create *TranslationRecordCreate
	}

	// TranslationRecordUpsert is the "OnConflict" setter.
	TranslationRecordUpsert struct {
		*sql.UpdateSet
	}
)

// SetSourceHash sets the "source_hash" field.
func (u *TranslationRecordUpsert) SetSourceHash(v string) *TranslationRecordUpsert {
	u.Set(translationrecord.FieldSourceHash, v)
	return u
}

// UpdateSourceHash sets the "source_hash" field to the value that was provided on create.
func (u *TranslationRecordUpsert) UpdateSourceHash() *TranslationRecordUpsert {
	u.SetExcluded(translationrecord.FieldSourceHash)
	return u
}

// SetSourceLang sets the "source_lang" field.
func (u *TranslationRecordUpsert) SetSourceLang(v string) *TranslationRecordUpsert {
	u.Set(translationrecord.FieldSourceLang, v)
	return u
}

// UpdateSourceLang sets the "source_lang" field to the value that was provided on create.
func (u *TranslationRecordUpsert) UpdateSourceLang() *TranslationRecordUpsert {
	u.SetExcluded(translationrecord.FieldSourceLang)
	return u
}

// SetTargetLang sets the "target_lang" field.
func (u *TranslationRecordUpsert) SetTargetLang(v string) *TranslationRecordUpsert {
	u.Set(translationrecord.FieldTargetLang, v)
	return u
}

// UpdateTargetLang sets the "target_lang" field to the value that was provided on create.
func (u *TranslationRecordUpsert) UpdateTargetLang() *TranslationRecordUpsert {
	u.SetExcluded(translationrecord.FieldTargetLang)
	return u
}

// SetTranslatedText sets the "translated_text" field.
func (u *TranslationRecordUpsert) SetTranslatedText(v string) *TranslationRecordUpsert {
	u.Set(translationrecord.FieldTranslatedText, v)
	return u
}

// UpdateTranslatedText sets the "translated_text" field to the value that was provided on create.
func (u *TranslationRecordUpsert) UpdateTranslatedText() *TranslationRecordUpsert {
	u.SetExcluded(translationrecord.FieldTranslatedText)
	return u
}

// SetProvider sets the "provider" field.
func (u *TranslationRecordUpsert) SetProvider(v string) *TranslationRecordUpsert {
	u.Set(translationrecord.FieldProvider, v)
	return u
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *TranslationRecordUpsert) UpdateProvider() *TranslationRecordUpsert {
	u.SetExcluded(translationrecord.FieldProvider)
	return u
}

// SetConfidence sets the "confidence" field.
func (u *TranslationRecordUpsert) SetConfidence(v float64) *TranslationRecordUpsert {
	u.Set(translationrecord.FieldConfidence, v)
	return u
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *TranslationRecordUpsert) UpdateConfidence() *TranslationRecordUpsert {
	u.SetExcluded(translationrecord.FieldConfidence)
	return u
}

// AddConfidence adds v to the "confidence" field.
func (u *TranslationRecordUpsert) AddConfidence(v float64) *TranslationRecordUpsert {
	u.Add(translationrecord.FieldConfidence, v)
	return u
}

// SetAccessCount sets the "access_count" field.
func (u *TranslationRecordUpsert) SetAccessCount(v int) *TranslationRecordUpsert {
	u.Set(translationrecord.FieldAccessCount, v)
	return u
}

// UpdateAccessCount sets the "access_count" field to the value that was provided on create.
func (u *TranslationRecordUpsert) UpdateAccessCount() *TranslationRecordUpsert {
	u.SetExcluded(translationrecord.FieldAccessCount)
	return u
}

// AddAccessCount adds v to the "access_count" field.
func (u *TranslationRecordUpsert) AddAccessCount(v int) *TranslationRecordUpsert {
	u.Add(translationrecord.FieldAccessCount, v)
	return u
}

// SetLastAccessed sets the "last_accessed" field.
func (u *TranslationRecordUpsert) SetLastAccessed(v time.Time) *TranslationRecordUpsert {
	u.Set(translationrecord.FieldLastAccessed, v)
	return u
}

// UpdateLastAccessed sets the "last_accessed" field to the value that was provided on create.
func (u *TranslationRecordUpsert) UpdateLastAccessed() *TranslationRecordUpsert {
	u.SetExcluded(translationrecord.FieldLastAccessed)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.TranslationRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *TranslationRecordUpsertOne) UpdateNewValues() *TranslationRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(translationrecord.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TranslationRecord.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TranslationRecordUpsertOne) Ignore() *TranslationRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TranslationRecordUpsertOne) DoNothing() *TranslationRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TranslationRecordCreate.OnConflict
// documentation for more info.
func (u *TranslationRecordUpsertOne) Update(set func(*TranslationRecordUpsert)) *TranslationRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TranslationRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetSourceHash sets the "source_hash" field.
func (u *TranslationRecordUpsertOne) SetSourceHash(v string) *TranslationRecordUpsertOne {
	return u.Update(func(s *TranslationRecordUpsert) {
		s.SetSourceHash(v)
	})
}

// UpdateSourceHash sets the "source_hash" field to the value that was provided on create.
func (u *TranslationRecordUpsertOne) UpdateSourceHash() *TranslationRecordUpsertOne {
	return u.Update(func(s *TranslationRecordUpsert) {
		s.UpdateSourceHash()
	})
}

// SetSourceLang sets the "source_lang" field.
func (u *TranslationRecordUpsertOne) SetSourceLang(v string) *TranslationRecordUpsertOne {
	return u.Update(func(s *TranslationRecordUpsert) {
		s.SetSourceLang(v)
	})
}

// UpdateSourceLang sets the "source_lang" field to the value that was provided on create.
func (u *TranslationRecordUpsertOne) UpdateSourceLang() *TranslationRecordUpsertOne {
	return u.Update(func(s *TranslationRecordUpsert) {
		s.UpdateSourceLang()
	})
}

// SetTargetLang sets the "target_lang" field.
func (u *TranslationRecordUpsertOne) SetTargetLang(v string) *TranslationRecordUpsertOne {
	return u.Update(func(s *TranslationRecordUpsert) {
		s.SetTargetLang(v)
	})
}

// UpdateTargetLang sets the "target_lang" field to the value that was provided on create.
func (u *TranslationRecordUpsertOne) UpdateTargetLang() *TranslationRecordUpsertOne {
	return u.Update(func(s *TranslationRecordUpsert) {
		s.UpdateTargetLang()
	})
}

// SetTranslatedText sets the "translated_text" field.
func (u *TranslationRecordUpsertOne) SetTranslatedText(v string) *TranslationRecordUpsertOne {
	return u.Update(func(s *TranslationRecordUpsert) {
		s.SetTranslatedText(v)
	})
}

// UpdateTranslatedText sets the "translated_text" field to the value that was provided on create.
func (u *TranslationRecordUpsertOne) UpdateTranslatedText() *TranslationRecordUpsertOne {
	return u.Update(func(s *TranslationRecordUpsert) {
		s.UpdateTranslatedText()
	})
}

// SetProvider sets the "provider" field.
func (u *TranslationRecordUpsertOne) SetProvider(v string) *TranslationRecordUpsertOne {
	return u.Update(func(s *TranslationRecordUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *TranslationRecordUpsertOne) UpdateProvider() *TranslationRecordUpsertOne {
	return u.Update(func(s *TranslationRecordUpsert) {
		s.UpdateProvider()
	})
}

// SetConfidence sets the "confidence" field.
func (u *TranslationRecordUpsertOne) SetConfidence(v float64) *TranslationRecordUpsertOne {
	return u.Update(func(s *TranslationRecordUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *TranslationRecordUpsertOne) AddConfidence(v float64) *TranslationRecordUpsertOne {
	return u.Update(func(s *TranslationRecordUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *TranslationRecordUpsertOne) UpdateConfidence() *TranslationRecordUpsertOne {
	return u.Update(func(s *TranslationRecordUpsert) {
		s.UpdateConfidence()
	})
}

// SetAccessCount sets the "access_count" field.
func (u *TranslationRecordUpsertOne) SetAccessCount(v int) *TranslationRecordUpsertOne {
	return u.Update(func(s *TranslationRecordUpsert) {
		s.SetAccessCount(v)
	})
}

// AddAccessCount adds v to the "access_count" field.
func (u *TranslationRecordUpsertOne) AddAccessCount(v int) *TranslationRecordUpsertOne {
	return u.Update(func(s *TranslationRecordUpsert) {
		s.AddAccessCount(v)
	})
}

// UpdateAccessCount sets the "access_count" field to the value that was provided on create.
func (u *TranslationRecordUpsertOne) UpdateAccessCount() *TranslationRecordUpsertOne {
	return u.Update(func(s *TranslationRecordUpsert) {
		s.UpdateAccessCount()
	})
}

// SetLastAccessed sets the "last_accessed" field.
func (u *TranslationRecordUpsertOne) SetLastAccessed(v time.Time) *TranslationRecordUpsertOne {
	return u.Update(func(s *TranslationRecordUpsert) {
		s.SetLastAccessed(v)
	})
}

// UpdateLastAccessed sets the "last_accessed" field to the value that was provided on create.
func (u *TranslationRecordUpsertOne) UpdateLastAccessed() *TranslationRecordUpsertOne {
	return u.Update(func(s *TranslationRecordUpsert) {
		s.UpdateLastAccessed()
	})
}

// Exec executes the query.
func (u *TranslationRecordUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TranslationRecordCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TranslationRecordUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TranslationRecordUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TranslationRecordUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TranslationRecordCreateBulk is the builder for creating many TranslationRecord entities in bulk.
type TranslationRecordCreateBulk struct {
	config
	err      error
	builders []*TranslationRecordCreate
	conflict []sql.ConflictOption
}

// Save creates the TranslationRecord entities in the database.
func (_c *TranslationRecordCreateBulk) Save(ctx context.Context) ([]*TranslationRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TranslationRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TranslationRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TranslationRecordCreateBulk) SaveX(ctx context.Context) []*TranslationRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TranslationRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TranslationRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TranslationRecord.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TranslationRecordUpsert) {
//			SetSourceHash(v+v).
//		}).
//		Exec(ctx)
func (_c *TranslationRecordCreateBulk) OnConflict(opts ...sql.ConflictOption) *TranslationRecordUpsertBulk {
	_c.conflict = opts
	return &TranslationRecordUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TranslationRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TranslationRecordCreateBulk) OnConflictColumns(columns ...string) *TranslationRecordUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TranslationRecordUpsertBulk{
		create: _c,
	}
}

// TranslationRecordUpsertBulk is the builder for "upsert"-ing
// a bulk of TranslationRecord nodes.
type TranslationRecordUpsertBulk struct {
	create *TranslationRecordCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.TranslationRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *TranslationRecordUpsertBulk) UpdateNewValues() *TranslationRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(translationrecord.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TranslationRecord.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TranslationRecordUpsertBulk) Ignore() *TranslationRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TranslationRecordUpsertBulk) DoNothing() *TranslationRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TranslationRecordCreateBulk.OnConflict
// documentation for more info.
func (u *TranslationRecordUpsertBulk) Update(set func(*TranslationRecordUpsert)) *TranslationRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TranslationRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetSourceHash sets the "source_hash" field.
func (u *TranslationRecordUpsertBulk) SetSourceHash(v string) *TranslationRecordUpsertBulk {
	return u.Update(func(s *TranslationRecordUpsert) {
		s.SetSourceHash(v)
	})
}

// UpdateSourceHash sets the "source_hash" field to the value that was provided on create.
func (u *TranslationRecordUpsertBulk) UpdateSourceHash() *TranslationRecordUpsertBulk {
	return u.Update(func(s *TranslationRecordUpsert) {
		s.UpdateSourceHash()
	})
}

// SetSourceLang sets the "source_lang" field.
func (u *TranslationRecordUpsertBulk) SetSourceLang(v string) *TranslationRecordUpsertBulk {
	return u.Update(func(s *TranslationRecordUpsert) {
		s.SetSourceLang(v)
	})
}

// UpdateSourceLang sets the "source_lang" field to the value that was provided on create.
func (u *TranslationRecordUpsertBulk) UpdateSourceLang() *TranslationRecordUpsertBulk {
	return u.Update(func(s *TranslationRecordUpsert) {
		s.UpdateSourceLang()
	})
}

// SetTargetLang sets the "target_lang" field.
func (u *TranslationRecordUpsertBulk) SetTargetLang(v string) *TranslationRecordUpsertBulk {
	return u.Update(func(s *TranslationRecordUpsert) {
		s.SetTargetLang(v)
	})
}

// UpdateTargetLang sets the "target_lang" field to the value that was provided on create.
func (u *TranslationRecordUpsertBulk) UpdateTargetLang() *TranslationRecordUpsertBulk {
	return u.Update(func(s *TranslationRecordUpsert) {
		s.UpdateTargetLang()
	})
}

// SetTranslatedText sets the "translated_text" field.
func (u *TranslationRecordUpsertBulk) SetTranslatedText(v string) *TranslationRecordUpsertBulk {
	return u.Update(func(s *TranslationRecordUpsert) {
		s.SetTranslatedText(v)
	})
}

// UpdateTranslatedText sets the "translated_text" field to the value that was provided on create.
func (u *TranslationRecordUpsertBulk) UpdateTranslatedText() *TranslationRecordUpsertBulk {
	return u.Update(func(s *TranslationRecordUpsert) {
		s.UpdateTranslatedText()
	})
}

// SetProvider sets the "provider" field.
func (u *TranslationRecordUpsertBulk) SetProvider(v string) *TranslationRecordUpsertBulk {
	return u.Update(func(s *TranslationRecordUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *TranslationRecordUpsertBulk) UpdateProvider() *TranslationRecordUpsertBulk {
	return u.Update(func(s *TranslationRecordUpsert) {
		s.UpdateProvider()
	})
}

// SetConfidence sets the "confidence" field.
func (u *TranslationRecordUpsertBulk) SetConfidence(v float64) *TranslationRecordUpsertBulk {
	return u.Update(func(s *TranslationRecordUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *TranslationRecordUpsertBulk) AddConfidence(v float64) *TranslationRecordUpsertBulk {
	return u.Update(func(s *TranslationRecordUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *TranslationRecordUpsertBulk) UpdateConfidence() *TranslationRecordUpsertBulk {
	return u.Update(func(s *TranslationRecordUpsert) {
		s.UpdateConfidence()
	})
}

// SetAccessCount sets the "access_count" field.
func (u *TranslationRecordUpsertBulk) SetAccessCount(v int) *TranslationRecordUpsertBulk {
	return u.Update(func(s *TranslationRecordUpsert) {
		s.SetAccessCount(v)
	})
}

// AddAccessCount adds v to the "access_count" field.
func (u *TranslationRecordUpsertBulk) AddAccessCount(v int) *TranslationRecordUpsertBulk {
	return u.Update(func(s *TranslationRecordUpsert) {
		s.AddAccessCount(v)
	})
}

// UpdateAccessCount sets the "access_count" field to the value that was provided on create.
func (u *TranslationRecordUpsertBulk) UpdateAccessCount() *TranslationRecordUpsertBulk {
	return u.Update(func(s *TranslationRecordUpsert) {
		s.UpdateAccessCount()
	})
}

// SetLastAccessed sets the "last_accessed" field.
func (u *TranslationRecordUpsertBulk) SetLastAccessed(v time.Time) *TranslationRecordUpsertBulk {
	return u.Update(func(s *TranslationRecordUpsert) {
		s.SetLastAccessed(v)
	})
}

// UpdateLastAccessed sets the "last_accessed" field to the value that was provided on create.
func (u *TranslationRecordUpsertBulk) UpdateLastAccessed() *TranslationRecordUpsertBulk {
	return u.Update(func(s *TranslationRecordUpsert) {
		s.UpdateLastAccessed()
	})
}

// Exec executes the query.
func (u *TranslationRecordUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TranslationRecordCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TranslationRecordCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TranslationRecordUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
