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
	"github.com/gallegodamar/sinonimoak/ent/runevent"
	"github.com/gallegodamar/sinonimoak/ent/schema"
)

// RunEventCreate is the builder for creating a RunEvent entity.
type RunEventCreate struct {
	config
	mutation *RunEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSequence sets the "sequence" field.
func (_c *RunEventCreate) SetSequence(v int64) *RunEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *RunEventCreate) SetTimestamp(v time.Time) *RunEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *RunEventCreate) SetNillableTimestamp(v *time.Time) *RunEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *RunEventCreate) SetRunID(v string) *RunEventCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetMode sets the "mode" field.
func (_c *RunEventCreate) SetMode(v string) *RunEventCreate {
	_c.mutation.SetMode(v)
	return _c
}

// SetLevel sets the "level" field.
func (_c *RunEventCreate) SetLevel(v int) *RunEventCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetStandings sets the "standings" field.
func (_c *RunEventCreate) SetStandings(v []schema.PlayerStanding) *RunEventCreate {
	_c.mutation.SetStandings(v)
	return _c
}

// SetQuestionsServed sets the "questions_served" field.
func (_c *RunEventCreate) SetQuestionsServed(v int) *RunEventCreate {
	_c.mutation.SetQuestionsServed(v)
	return _c
}

// SetNillableQuestionsServed sets the "questions_served" field if the given value is not nil.
func (_c *RunEventCreate) SetNillableQuestionsServed(v *int) *RunEventCreate {
	if v != nil {
		_c.SetQuestionsServed(*v)
	}
	return _c
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_c *RunEventCreate) SetCorrectAnswers(v int) *RunEventCreate {
	_c.mutation.SetCorrectAnswers(v)
	return _c
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_c *RunEventCreate) SetNillableCorrectAnswers(v *int) *RunEventCreate {
	if v != nil {
		_c.SetCorrectAnswers(*v)
	}
	return _c
}

// SetDurationSecs sets the "duration_secs" field.
func (_c *RunEventCreate) SetDurationSecs(v int) *RunEventCreate {
	_c.mutation.SetDurationSecs(v)
	return _c
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_c *RunEventCreate) SetNillableDurationSecs(v *int) *RunEventCreate {
	if v != nil {
		_c.SetDurationSecs(*v)
	}
	return _c
}

// Mutation returns the RunEventMutation object of the builder.
func (_c *RunEventCreate) Mutation() *RunEventMutation {
	return _c.mutation
}

// Save creates the RunEvent in the database.
func (_c *RunEventCreate) Save(ctx context.Context) (*RunEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RunEventCreate) SaveX(ctx context.Context) *RunEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RunEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := runevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.QuestionsServed(); !ok {
		v := runevent.DefaultQuestionsServed
		_c.mutation.SetQuestionsServed(v)
	}
	if _, ok := _c.mutation.CorrectAnswers(); !ok {
		v := runevent.DefaultCorrectAnswers
		_c.mutation.SetCorrectAnswers(v)
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		v := runevent.DefaultDurationSecs
		_c.mutation.SetDurationSecs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RunEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "RunEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "RunEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "RunEvent.run_id"`)}
	}
	if v, ok := _c.mutation.RunID(); ok {
		if err := runevent.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "RunEvent.run_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Mode(); !ok {
		return &ValidationError{Name: "mode", err: errors.New(`ent: missing required field "RunEvent.mode"`)}
	}
	if v, ok := _c.mutation.Mode(); ok {
		if err := runevent.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "RunEvent.mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "RunEvent.level"`)}
	}
	if _, ok := _c.mutation.QuestionsServed(); !ok {
		return &ValidationError{Name: "questions_served", err: errors.New(`ent: missing required field "RunEvent.questions_served"`)}
	}
	if _, ok := _c.mutation.CorrectAnswers(); !ok {
		return &ValidationError{Name: "correct_answers", err: errors.New(`ent: missing required field "RunEvent.correct_answers"`)}
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		return &ValidationError{Name: "duration_secs", err: errors.New(`ent: missing required field "RunEvent.duration_secs"`)}
	}
	return nil
}

func (_c *RunEventCreate) sqlSave(ctx context.Context) (*RunEvent, error) {
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

func (_c *RunEventCreate) createSpec() (*RunEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &RunEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(runevent.Table, sqlgraph.NewFieldSpec(runevent.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(runevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(runevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(runevent.FieldRunID, field.TypeString, value)
		_node.RunID = value
	}
	if value, ok := _c.mutation.Mode(); ok {
		_spec.SetField(runevent.FieldMode, field.TypeString, value)
		_node.Mode = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(runevent.FieldLevel, field.TypeInt, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.Standings(); ok {
		_spec.SetField(runevent.FieldStandings, field.TypeJSON, value)
		_node.Standings = value
	}
	if value, ok := _c.mutation.QuestionsServed(); ok {
		_spec.SetField(runevent.FieldQuestionsServed, field.TypeInt, value)
		_node.QuestionsServed = value
	}
	if value, ok := _c.mutation.CorrectAnswers(); ok {
		_spec.SetField(runevent.FieldCorrectAnswers, field.TypeInt, value)
		_node.CorrectAnswers = value
	}
	if value, ok := _c.mutation.DurationSecs(); ok {
		_spec.SetField(runevent.FieldDurationSecs, field.TypeInt, value)
		_node.DurationSecs = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RunEvent.Create().
//		SetSequence(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RunEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *RunEventCreate) OnConflict(opts ...sql.ConflictOption) *RunEventUpsertOne {
	_c.conflict = opts
	return &RunEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RunEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RunEventCreate) OnConflictColumns(columns ...string) *RunEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RunEventUpsertOne{
		create: _c,
	}
}

type (
	// RunEventUpsertOne is the builder for "upsert"-ing
	//  one RunEvent node.
	RunEventUpsertOne struct {
		create *RunEventCreate
	}

	// RunEventUpsert is the "OnConflict" setter.
	RunEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetRunID sets the "run_id" field.
func (u *RunEventUpsert) SetRunID(v string) *RunEventUpsert {
	u.Set(runevent.FieldRunID, v)
	return u
}

// UpdateRunID sets the "run_id" field to the value that was provided on create.
func (u *RunEventUpsert) UpdateRunID() *RunEventUpsert {
	u.SetExcluded(runevent.FieldRunID)
	return u
}

// SetMode sets the "mode" field.
func (u *RunEventUpsert) SetMode(v string) *RunEventUpsert {
	u.Set(runevent.FieldMode, v)
	return u
}

// UpdateMode sets the "mode" field to the value that was provided on create.
func (u *RunEventUpsert) UpdateMode() *RunEventUpsert {
	u.SetExcluded(runevent.FieldMode)
	return u
}

// SetLevel sets the "level" field.
func (u *RunEventUpsert) SetLevel(v int) *RunEventUpsert {
	u.Set(runevent.FieldLevel, v)
	return u
}

// UpdateLevel sets the "level" field to the value that was provided on create.
func (u *RunEventUpsert) UpdateLevel() *RunEventUpsert {
	u.SetExcluded(runevent.FieldLevel)
	return u
}

// AddLevel adds v to the "level" field.
func (u *RunEventUpsert) AddLevel(v int) *RunEventUpsert {
	u.Add(runevent.FieldLevel, v)
	return u
}

// SetStandings sets the "standings" field.
func (u *RunEventUpsert) SetStandings(v []schema.PlayerStanding) *RunEventUpsert {
	u.Set(runevent.FieldStandings, v)
	return u
}

// UpdateStandings sets the "standings" field to the value that was provided on create.
func (u *RunEventUpsert) UpdateStandings() *RunEventUpsert {
	u.SetExcluded(runevent.FieldStandings)
	return u
}

// ClearStandings clears the value of the "standings" field.
func (u *RunEventUpsert) ClearStandings() *RunEventUpsert {
	u.SetNull(runevent.FieldStandings)
	return u
}

// SetQuestionsServed sets the "questions_served" field.
func (u *RunEventUpsert) SetQuestionsServed(v int) *RunEventUpsert {
	u.Set(runevent.FieldQuestionsServed, v)
	return u
}

// UpdateQuestionsServed sets the "questions_served" field to the value that was provided on create.
func (u *RunEventUpsert) UpdateQuestionsServed() *RunEventUpsert {
	u.SetExcluded(runevent.FieldQuestionsServed)
	return u
}

// AddQuestionsServed adds v to the "questions_served" field.
func (u *RunEventUpsert) AddQuestionsServed(v int) *RunEventUpsert {
	u.Add(runevent.FieldQuestionsServed, v)
	return u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (u *RunEventUpsert) SetCorrectAnswers(v int) *RunEventUpsert {
	u.Set(runevent.FieldCorrectAnswers, v)
	return u
}

// UpdateCorrectAnswers sets the "correct_answers" field to the value that was provided on create.
func (u *RunEventUpsert) UpdateCorrectAnswers() *RunEventUpsert {
	u.SetExcluded(runevent.FieldCorrectAnswers)
	return u
}

// AddCorrectAnswers adds v to the "correct_answers" field.
func (u *RunEventUpsert) AddCorrectAnswers(v int) *RunEventUpsert {
	u.Add(runevent.FieldCorrectAnswers, v)
	return u
}

// SetDurationSecs sets the "duration_secs" field.
func (u *RunEventUpsert) SetDurationSecs(v int) *RunEventUpsert {
	u.Set(runevent.FieldDurationSecs, v)
	return u
}

// UpdateDurationSecs sets the "duration_secs" field to the value that was provided on create.
func (u *RunEventUpsert) UpdateDurationSecs() *RunEventUpsert {
	u.SetExcluded(runevent.FieldDurationSecs)
	return u
}

// AddDurationSecs adds v to the "duration_secs" field.
func (u *RunEventUpsert) AddDurationSecs(v int) *RunEventUpsert {
	u.Add(runevent.FieldDurationSecs, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.RunEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *RunEventUpsertOne) UpdateNewValues() *RunEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.Sequence(); exists {
			s.SetIgnore(runevent.FieldSequence)
		}
		if _, exists := u.create.mutation.Timestamp(); exists {
			s.SetIgnore(runevent.FieldTimestamp)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RunEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RunEventUpsertOne) Ignore() *RunEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RunEventUpsertOne) DoNothing() *RunEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RunEventCreate.OnConflict
// documentation for more info.
func (u *RunEventUpsertOne) Update(set func(*RunEventUpsert)) *RunEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RunEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetRunID sets the "run_id" field.
func (u *RunEventUpsertOne) SetRunID(v string) *RunEventUpsertOne {
	return u.Update(func(s *RunEventUpsert) {
		s.SetRunID(v)
	})
}

// UpdateRunID sets the "run_id" field to the value that was provided on create.
func (u *RunEventUpsertOne) UpdateRunID() *RunEventUpsertOne {
	return u.Update(func(s *RunEventUpsert) {
		s.UpdateRunID()
	})
}

// SetMode sets the "mode" field.
func (u *RunEventUpsertOne) SetMode(v string) *RunEventUpsertOne {
	return u.Update(func(s *RunEventUpsert) {
		s.SetMode(v)
	})
}

// UpdateMode sets the "mode" field to the value that was provided on create.
func (u *RunEventUpsertOne) UpdateMode() *RunEventUpsertOne {
	return u.Update(func(s *RunEventUpsert) {
		s.UpdateMode()
	})
}

// SetLevel sets the "level" field.
func (u *RunEventUpsertOne) SetLevel(v int) *RunEventUpsertOne {
	return u.Update(func(s *RunEventUpsert) {
		s.SetLevel(v)
	})
}

// AddLevel adds v to the "level" field.
func (u *RunEventUpsertOne) AddLevel(v int) *RunEventUpsertOne {
	return u.Update(func(s *RunEventUpsert) {
		s.AddLevel(v)
	})
}

// UpdateLevel sets the "level" field to the value that was provided on create.
func (u *RunEventUpsertOne) UpdateLevel() *RunEventUpsertOne {
	return u.Update(func(s *RunEventUpsert) {
		s.UpdateLevel()
	})
}

// SetStandings sets the "standings" field.
func (u *RunEventUpsertOne) SetStandings(v []schema.PlayerStanding) *RunEventUpsertOne {
	return u.Update(func(s *RunEventUpsert) {
		s.SetStandings(v)
	})
}

// UpdateStandings sets the "standings" field to the value that was provided on create.
func (u *RunEventUpsertOne) UpdateStandings() *RunEventUpsertOne {
	return u.Update(func(s *RunEventUpsert) {
		s.UpdateStandings()
	})
}

// ClearStandings clears the value of the "standings" field.
func (u *RunEventUpsertOne) ClearStandings() *RunEventUpsertOne {
	return u.Update(func(s *RunEventUpsert) {
		s.ClearStandings()
	})
}

// SetQuestionsServed sets the "questions_served" field.
func (u *RunEventUpsertOne) SetQuestionsServed(v int) *RunEventUpsertOne {
	return u.Update(func(s *RunEventUpsert) {
		s.SetQuestionsServed(v)
	})
}

// AddQuestionsServed adds v to the "questions_served" field.
func (u *RunEventUpsertOne) AddQuestionsServed(v int) *RunEventUpsertOne {
	return u.Update(func(s *RunEventUpsert) {
		s.AddQuestionsServed(v)
	})
}

// UpdateQuestionsServed sets the "questions_served" field to the value that was provided on create.
func (u *RunEventUpsertOne) UpdateQuestionsServed() *RunEventUpsertOne {
	return u.Update(func(s *RunEventUpsert) {
		s.UpdateQuestionsServed()
	})
}

// SetCorrectAnswers sets the "correct_answers" field.
func (u *RunEventUpsertOne) SetCorrectAnswers(v int) *RunEventUpsertOne {
	return u.Update(func(s *RunEventUpsert) {
		s.SetCorrectAnswers(v)
	})
}

// AddCorrectAnswers adds v to the "correct_answers" field.
func (u *RunEventUpsertOne) AddCorrectAnswers(v int) *RunEventUpsertOne {
	return u.Update(func(s *RunEventUpsert) {
		s.AddCorrectAnswers(v)
	})
}

// UpdateCorrectAnswers sets the "correct_answers" field to the value that was provided on create.
func (u *RunEventUpsertOne) UpdateCorrectAnswers() *RunEventUpsertOne {
	return u.Update(func(s *RunEventUpsert) {
		s.UpdateCorrectAnswers()
	})
}

// SetDurationSecs sets the "duration_secs" field.
func (u *RunEventUpsertOne) SetDurationSecs(v int) *RunEventUpsertOne {
	return u.Update(func(s *RunEventUpsert) {
		s.SetDurationSecs(v)
	})
}

// AddDurationSecs adds v to the "duration_secs" field.
func (u *RunEventUpsertOne) AddDurationSecs(v int) *RunEventUpsertOne {
	return u.Update(func(s *RunEventUpsert) {
		s.AddDurationSecs(v)
	})
}

// UpdateDurationSecs sets the "duration_secs" field to the value that was provided on create.
func (u *RunEventUpsertOne) UpdateDurationSecs() *RunEventUpsertOne {
	return u.Update(func(s *RunEventUpsert) {
		s.UpdateDurationSecs()
	})
}

// Exec executes the query.
func (u *RunEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RunEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RunEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RunEventUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RunEventUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RunEventCreateBulk is the builder for creating many RunEvent entities in bulk.
type RunEventCreateBulk struct {
	config
	err      error
	builders []*RunEventCreate
	conflict []sql.ConflictOption
}

// Save creates the RunEvent entities in the database.
func (_c *RunEventCreateBulk) Save(ctx context.Context) ([]*RunEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RunEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RunEventMutation)
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
func (_c *RunEventCreateBulk) SaveX(ctx context.Context) []*RunEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RunEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RunEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *RunEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *RunEventUpsertBulk {
	_c.conflict = opts
	return &RunEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RunEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RunEventCreateBulk) OnConflictColumns(columns ...string) *RunEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RunEventUpsertBulk{
		create: _c,
	}
}

// RunEventUpsertBulk is the builder for "upsert"-ing
// a bulk of RunEvent nodes.
type RunEventUpsertBulk struct {
	create *RunEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.RunEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *RunEventUpsertBulk) UpdateNewValues() *RunEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.Sequence(); exists {
				s.SetIgnore(runevent.FieldSequence)
			}
			if _, exists := b.mutation.Timestamp(); exists {
				s.SetIgnore(runevent.FieldTimestamp)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RunEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RunEventUpsertBulk) Ignore() *RunEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RunEventUpsertBulk) DoNothing() *RunEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RunEventCreateBulk.OnConflict
// documentation for more info.
func (u *RunEventUpsertBulk) Update(set func(*RunEventUpsert)) *RunEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RunEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetRunID sets the "run_id" field.
func (u *RunEventUpsertBulk) SetRunID(v string) *RunEventUpsertBulk {
	return u.Update(func(s *RunEventUpsert) {
		s.SetRunID(v)
	})
}

// UpdateRunID sets the "run_id" field to the value that was provided on create.
func (u *RunEventUpsertBulk) UpdateRunID() *RunEventUpsertBulk {
	return u.Update(func(s *RunEventUpsert) {
		s.UpdateRunID()
	})
}

// SetMode sets the "mode" field.
func (u *RunEventUpsertBulk) SetMode(v string) *RunEventUpsertBulk {
	return u.Update(func(s *RunEventUpsert) {
		s.SetMode(v)
	})
}

// UpdateMode sets the "mode" field to the value that was provided on create.
func (u *RunEventUpsertBulk) UpdateMode() *RunEventUpsertBulk {
	return u.Update(func(s *RunEventUpsert) {
		s.UpdateMode()
	})
}

// SetLevel sets the "level" field.
func (u *RunEventUpsertBulk) SetLevel(v int) *RunEventUpsertBulk {
	return u.Update(func(s *RunEventUpsert) {
		s.SetLevel(v)
	})
}

// AddLevel adds v to the "level" field.
func (u *RunEventUpsertBulk) AddLevel(v int) *RunEventUpsertBulk {
	return u.Update(func(s *RunEventUpsert) {
		s.AddLevel(v)
	})
}

// UpdateLevel sets the "level" field to the value that was provided on create.
func (u *RunEventUpsertBulk) UpdateLevel() *RunEventUpsertBulk {
	return u.Update(func(s *RunEventUpsert) {
		s.UpdateLevel()
	})
}

// SetStandings sets the "standings" field.
func (u *RunEventUpsertBulk) SetStandings(v []schema.PlayerStanding) *RunEventUpsertBulk {
	return u.Update(func(s *RunEventUpsert) {
		s.SetStandings(v)
	})
}

// UpdateStandings sets the "standings" field to the value that was provided on create.
func (u *RunEventUpsertBulk) UpdateStandings() *RunEventUpsertBulk {
	return u.Update(func(s *RunEventUpsert) {
		s.UpdateStandings()
	})
}

// ClearStandings clears the value of the "standings" field.
func (u *RunEventUpsertBulk) ClearStandings() *RunEventUpsertBulk {
	return u.Update(func(s *RunEventUpsert) {
		s.ClearStandings()
	})
}

// SetQuestionsServed sets the "questions_served" field.
func (u *RunEventUpsertBulk) SetQuestionsServed(v int) *RunEventUpsertBulk {
	return u.Update(func(s *RunEventUpsert) {
		s.SetQuestionsServed(v)
	})
}

// AddQuestionsServed adds v to the "questions_served" field.
func (u *RunEventUpsertBulk) AddQuestionsServed(v int) *RunEventUpsertBulk {
	return u.Update(func(s *RunEventUpsert) {
		s.AddQuestionsServed(v)
	})
}

// UpdateQuestionsServed sets the "questions_served" field to the value that was provided on create.
func (u *RunEventUpsertBulk) UpdateQuestionsServed() *RunEventUpsertBulk {
	return u.Update(func(s *RunEventUpsert) {
		s.UpdateQuestionsServed()
	})
}

// SetCorrectAnswers sets the "correct_answers" field.
func (u *RunEventUpsertBulk) SetCorrectAnswers(v int) *RunEventUpsertBulk {
	return u.Update(func(s *RunEventUpsert) {
		s.SetCorrectAnswers(v)
	})
}

// AddCorrectAnswers adds v to the "correct_answers" field.
func (u *RunEventUpsertBulk) AddCorrectAnswers(v int) *RunEventUpsertBulk {
	return u.Update(func(s *RunEventUpsert) {
		s.AddCorrectAnswers(v)
	})
}

// UpdateCorrectAnswers sets the "correct_answers" field to the value that was provided on create.
func (u *RunEventUpsertBulk) UpdateCorrectAnswers() *RunEventUpsertBulk {
	return u.Update(func(s *RunEventUpsert) {
		s.UpdateCorrectAnswers()
	})
}

// SetDurationSecs sets the "duration_secs" field.
func (u *RunEventUpsertBulk) SetDurationSecs(v int) *RunEventUpsertBulk {
	return u.Update(func(s *RunEventUpsert) {
		s.SetDurationSecs(v)
	})
}

// AddDurationSecs adds v to the "duration_secs" field.
func (u *RunEventUpsertBulk) AddDurationSecs(v int) *RunEventUpsertBulk {
	return u.Update(func(s *RunEventUpsert) {
		s.AddDurationSecs(v)
	})
}

// UpdateDurationSecs sets the "duration_secs" field to the value that was provided on create.
func (u *RunEventUpsertBulk) UpdateDurationSecs() *RunEventUpsertBulk {
	return u.Update(func(s *RunEventUpsert) {
		s.UpdateDurationSecs()
	})
}

// Exec executes the query.
func (u *RunEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the RunEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RunEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RunEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
