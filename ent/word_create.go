// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/gallegodamar/sinonimoak/ent/word"
)

// WordCreate is the builder for creating a Word entity.
type WordCreate struct {
	config
	mutation *WordMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetHeadword sets the "headword" field.
func (_c *WordCreate) SetHeadword(v string) *WordCreate {
	_c.mutation.SetHeadword(v)
	return _c
}

// SetSynonyms sets the "synonyms" field.
func (_c *WordCreate) SetSynonyms(v []string) *WordCreate {
	_c.mutation.SetSynonyms(v)
	return _c
}

// SetLevel sets the "level" field.
func (_c *WordCreate) SetLevel(v int) *WordCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetActive sets the "active" field.
func (_c *WordCreate) SetActive(v bool) *WordCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *WordCreate) SetNillableActive(v *bool) *WordCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// Mutation returns the WordMutation object of the builder.
func (_c *WordCreate) Mutation() *WordMutation {
	return _c.mutation
}

// Save creates the Word in the database.
func (_c *WordCreate) Save(ctx context.Context) (*Word, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WordCreate) SaveX(ctx context.Context) *Word {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WordCreate) defaults() {
	if _, ok := _c.mutation.Active(); !ok {
		v := word.DefaultActive
		_c.mutation.SetActive(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WordCreate) check() error {
	if _, ok := _c.mutation.Headword(); !ok {
		return &ValidationError{Name: "headword", err: errors.New(`ent: missing required field "Word.headword"`)}
	}
	if v, ok := _c.mutation.Headword(); ok {
		if err := word.HeadwordValidator(v); err != nil {
			return &ValidationError{Name: "headword", err: fmt.Errorf(`ent: validator failed for field "Word.headword": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Synonyms(); !ok {
		return &ValidationError{Name: "synonyms", err: errors.New(`ent: missing required field "Word.synonyms"`)}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "Word.level"`)}
	}
	if v, ok := _c.mutation.Level(); ok {
		if err := word.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "Word.level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "Word.active"`)}
	}
	return nil
}

func (_c *WordCreate) sqlSave(ctx context.Context) (*Word, error) {
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

func (_c *WordCreate) createSpec() (*Word, *sqlgraph.CreateSpec) {
	var (
		_node = &Word{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(word.Table, sqlgraph.NewFieldSpec(word.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Headword(); ok {
		_spec.SetField(word.FieldHeadword, field.TypeString, value)
		_node.Headword = value
	}
	if value, ok := _c.mutation.Synonyms(); ok {
		_spec.SetField(word.FieldSynonyms, field.TypeJSON, value)
		_node.Synonyms = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(word.FieldLevel, field.TypeInt, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(word.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Word.Create().
//		SetHeadword(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WordUpsert) {
//			SetHeadword(v+v).
//		}).
//		Exec(ctx)
func (_c *WordCreate) OnConflict(opts ...sql.ConflictOption) *WordUpsertOne {
	_c.conflict = opts
	return &WordUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Word.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WordCreate) OnConflictColumns(columns ...string) *WordUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WordUpsertOne{
		create: _c,
	}
}

type (
	// WordUpsertOne is the builder for "upsert"-ing
	//  one Word node.
	WordUpsertOne struct {
		create *WordCreate
	}

	// WordUpsert is the "OnConflict" setter.
	WordUpsert struct {
		*sql.UpdateSet
	}
)

// SetHeadword sets the "headword" field.
func (u *WordUpsert) SetHeadword(v string) *WordUpsert {
	u.Set(word.FieldHeadword, v)
	return u
}

// UpdateHeadword sets the "headword" field to the value that was provided on create.
func (u *WordUpsert) UpdateHeadword() *WordUpsert {
	u.SetExcluded(word.FieldHeadword)
	return u
}

// SetSynonyms sets the "synonyms" field.
func (u *WordUpsert) SetSynonyms(v []string) *WordUpsert {
	u.Set(word.FieldSynonyms, v)
	return u
}

// UpdateSynonyms sets the "synonyms" field to the value that was provided on create.
func (u *WordUpsert) UpdateSynonyms() *WordUpsert {
	u.SetExcluded(word.FieldSynonyms)
	return u
}

// SetLevel sets the "level" field.
func (u *WordUpsert) SetLevel(v int) *WordUpsert {
	u.Set(word.FieldLevel, v)
	return u
}

// UpdateLevel sets the "level" field to the value that was provided on create.
func (u *WordUpsert) UpdateLevel() *WordUpsert {
	u.SetExcluded(word.FieldLevel)
	return u
}

// AddLevel adds v to the "level" field.
func (u *WordUpsert) AddLevel(v int) *WordUpsert {
	u.Add(word.FieldLevel, v)
	return u
}

// SetActive sets the "active" field.
func (u *WordUpsert) SetActive(v bool) *WordUpsert {
	u.Set(word.FieldActive, v)
	return u
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *WordUpsert) UpdateActive() *WordUpsert {
	u.SetExcluded(word.FieldActive)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Word.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *WordUpsertOne) UpdateNewValues() *WordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Word.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *WordUpsertOne) Ignore() *WordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WordUpsertOne) DoNothing() *WordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WordCreate.OnConflict
// documentation for more info.
func (u *WordUpsertOne) Update(set func(*WordUpsert)) *WordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WordUpsert{UpdateSet: update})
	}))
	return u
}

// SetHeadword sets the "headword" field.
func (u *WordUpsertOne) SetHeadword(v string) *WordUpsertOne {
	return u.Update(func(s *WordUpsert) {
		s.SetHeadword(v)
	})
}

// UpdateHeadword sets the "headword" field to the value that was provided on create.
func (u *WordUpsertOne) UpdateHeadword() *WordUpsertOne {
	return u.Update(func(s *WordUpsert) {
		s.UpdateHeadword()
	})
}

// SetSynonyms sets the "synonyms" field.
func (u *WordUpsertOne) SetSynonyms(v []string) *WordUpsertOne {
	return u.Update(func(s *WordUpsert) {
		s.SetSynonyms(v)
	})
}

// UpdateSynonyms sets the "synonyms" field to the value that was provided on create.
func (u *WordUpsertOne) UpdateSynonyms() *WordUpsertOne {
	return u.Update(func(s *WordUpsert) {
		s.UpdateSynonyms()
	})
}

// SetLevel sets the "level" field.
func (u *WordUpsertOne) SetLevel(v int) *WordUpsertOne {
	return u.Update(func(s *WordUpsert) {
		s.SetLevel(v)
	})
}

// AddLevel adds v to the "level" field.
func (u *WordUpsertOne) AddLevel(v int) *WordUpsertOne {
	return u.Update(func(s *WordUpsert) {
		s.AddLevel(v)
	})
}

// UpdateLevel sets the "level" field to the value that was provided on create.
func (u *WordUpsertOne) UpdateLevel() *WordUpsertOne {
	return u.Update(func(s *WordUpsert) {
		s.UpdateLevel()
	})
}

// SetActive sets the "active" field.
func (u *WordUpsertOne) SetActive(v bool) *WordUpsertOne {
	return u.Update(func(s *WordUpsert) {
		s.SetActive(v)
	})
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *WordUpsertOne) UpdateActive() *WordUpsertOne {
	return u.Update(func(s *WordUpsert) {
		s.UpdateActive()
	})
}

// Exec executes the query.
func (u *WordUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WordCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WordUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *WordUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *WordUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// WordCreateBulk is the builder for creating many Word entities in bulk.
type WordCreateBulk struct {
	config
	err      error
	builders []*WordCreate
	conflict []sql.ConflictOption
}

// Save creates the Word entities in the database.
func (_c *WordCreateBulk) Save(ctx context.Context) ([]*Word, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Word, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WordMutation)
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
func (_c *WordCreateBulk) SaveX(ctx context.Context) []*Word {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Word.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WordUpsert) {
//			SetHeadword(v+v).
//		}).
//		Exec(ctx)
func (_c *WordCreateBulk) OnConflict(opts ...sql.ConflictOption) *WordUpsertBulk {
	_c.conflict = opts
	return &WordUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Word.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WordCreateBulk) OnConflictColumns(columns ...string) *WordUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WordUpsertBulk{
		create: _c,
	}
}

// WordUpsertBulk is the builder for "upsert"-ing
// a bulk of Word nodes.
type WordUpsertBulk struct {
	create *WordCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Word.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *WordUpsertBulk) UpdateNewValues() *WordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Word.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *WordUpsertBulk) Ignore() *WordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WordUpsertBulk) DoNothing() *WordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WordCreateBulk.OnConflict
// documentation for more info.
func (u *WordUpsertBulk) Update(set func(*WordUpsert)) *WordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WordUpsert{UpdateSet: update})
	}))
	return u
}

// SetHeadword sets the "headword" field.
func (u *WordUpsertBulk) SetHeadword(v string) *WordUpsertBulk {
	return u.Update(func(s *WordUpsert) {
		s.SetHeadword(v)
	})
}

// UpdateHeadword sets the "headword" field to the value that was provided on create.
func (u *WordUpsertBulk) UpdateHeadword() *WordUpsertBulk {
	return u.Update(func(s *WordUpsert) {
		s.UpdateHeadword()
	})
}

// SetSynonyms sets the "synonyms" field.
func (u *WordUpsertBulk) SetSynonyms(v []string) *WordUpsertBulk {
	return u.Update(func(s *WordUpsert) {
		s.SetSynonyms(v)
	})
}

// UpdateSynonyms sets the "synonyms" field to the value that was provided on create.
func (u *WordUpsertBulk) UpdateSynonyms() *WordUpsertBulk {
	return u.Update(func(s *WordUpsert) {
		s.UpdateSynonyms()
	})
}

// SetLevel sets the "level" field.
func (u *WordUpsertBulk) SetLevel(v int) *WordUpsertBulk {
	return u.Update(func(s *WordUpsert) {
		s.SetLevel(v)
	})
}

// AddLevel adds v to the "level" field.
func (u *WordUpsertBulk) AddLevel(v int) *WordUpsertBulk {
	return u.Update(func(s *WordUpsert) {
		s.AddLevel(v)
	})
}

// UpdateLevel sets the "level" field to the value that was provided on create.
func (u *WordUpsertBulk) UpdateLevel() *WordUpsertBulk {
	return u.Update(func(s *WordUpsert) {
		s.UpdateLevel()
	})
}

// SetActive sets the "active" field.
func (u *WordUpsertBulk) SetActive(v bool) *WordUpsertBulk {
	return u.Update(func(s *WordUpsert) {
		s.SetActive(v)
	})
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *WordUpsertBulk) UpdateActive() *WordUpsertBulk {
	return u.Update(func(s *WordUpsert) {
		s.UpdateActive()
	})
}

// Exec executes the query.
func (u *WordUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the WordCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WordCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WordUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
