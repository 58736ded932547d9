// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/gallegodamar/sinonimoak/ent/predicate"
	"github.com/gallegodamar/sinonimoak/ent/word"
)

// WordUpdate is the builder for updating Word entities.
type WordUpdate struct {
	config
	hooks    []Hook
	mutation *WordMutation
}

// Where appends a list predicates to the WordUpdate builder.
func (_u *WordUpdate) Where(ps ...predicate.Word) *WordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetHeadword sets the "headword" field.
func (_u *WordUpdate) SetHeadword(v string) *WordUpdate {
	_u.mutation.SetHeadword(v)
	return _u
}

// SetNillableHeadword sets the "headword" field if the given value is not nil.
func (_u *WordUpdate) SetNillableHeadword(v *string) *WordUpdate {
	if v != nil {
		_u.SetHeadword(*v)
	}
	return _u
}

// SetSynonyms sets the "synonyms" field.
func (_u *WordUpdate) SetSynonyms(v []string) *WordUpdate {
	_u.mutation.SetSynonyms(v)
	return _u
}

// AppendSynonyms appends value to the "synonyms" field.
func (_u *WordUpdate) AppendSynonyms(v []string) *WordUpdate {
	_u.mutation.AppendSynonyms(v)
	return _u
}

// SetLevel sets the "level" field.
func (_u *WordUpdate) SetLevel(v int) *WordUpdate {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *WordUpdate) SetNillableLevel(v *int) *WordUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *WordUpdate) AddLevel(v int) *WordUpdate {
	_u.mutation.AddLevel(v)
	return _u
}

// SetActive sets the "active" field.
func (_u *WordUpdate) SetActive(v bool) *WordUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *WordUpdate) SetNillableActive(v *bool) *WordUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// Mutation returns the WordMutation object of the builder.
func (_u *WordUpdate) Mutation() *WordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WordUpdate) check() error {
	if v, ok := _u.mutation.Headword(); ok {
		if err := word.HeadwordValidator(v); err != nil {
			return &ValidationError{Name: "headword", err: fmt.Errorf(`ent: validator failed for field "Word.headword": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := word.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "Word.level": %w`, err)}
		}
	}
	return nil
}

func (_u *WordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(word.Table, word.Columns, sqlgraph.NewFieldSpec(word.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Headword(); ok {
		_spec.SetField(word.FieldHeadword, field.TypeString, value)
	}
	if value, ok := _u.mutation.Synonyms(); ok {
		_spec.SetField(word.FieldSynonyms, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSynonyms(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, word.FieldSynonyms, value)
		})
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(word.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(word.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(word.FieldActive, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{word.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WordUpdateOne is the builder for updating a single Word entity.
type WordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WordMutation
}

// SetHeadword sets the "headword" field.
func (_u *WordUpdateOne) SetHeadword(v string) *WordUpdateOne {
	_u.mutation.SetHeadword(v)
	return _u
}

// SetNillableHeadword sets the "headword" field if the given value is not nil.
func (_u *WordUpdateOne) SetNillableHeadword(v *string) *WordUpdateOne {
	if v != nil {
		_u.SetHeadword(*v)
	}
	return _u
}

// SetSynonyms sets the "synonyms" field.
func (_u *WordUpdateOne) SetSynonyms(v []string) *WordUpdateOne {
	_u.mutation.SetSynonyms(v)
	return _u
}

// AppendSynonyms appends value to the "synonyms" field.
func (_u *WordUpdateOne) AppendSynonyms(v []string) *WordUpdateOne {
	_u.mutation.AppendSynonyms(v)
	return _u
}

// SetLevel sets the "level" field.
func (_u *WordUpdateOne) SetLevel(v int) *WordUpdateOne {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *WordUpdateOne) SetNillableLevel(v *int) *WordUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *WordUpdateOne) AddLevel(v int) *WordUpdateOne {
	_u.mutation.AddLevel(v)
	return _u
}

// SetActive sets the "active" field.
func (_u *WordUpdateOne) SetActive(v bool) *WordUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *WordUpdateOne) SetNillableActive(v *bool) *WordUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// Mutation returns the WordMutation object of the builder.
func (_u *WordUpdateOne) Mutation() *WordMutation {
	return _u.mutation
}

// Where appends a list predicates to the WordUpdate builder.
func (_u *WordUpdateOne) Where(ps ...predicate.Word) *WordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WordUpdateOne) Select(field string, fields ...string) *WordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Word entity.
func (_u *WordUpdateOne) Save(ctx context.Context) (*Word, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WordUpdateOne) SaveX(ctx context.Context) *Word {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WordUpdateOne) check() error {
	if v, ok := _u.mutation.Headword(); ok {
		if err := word.HeadwordValidator(v); err != nil {
			return &ValidationError{Name: "headword", err: fmt.Errorf(`ent: validator failed for field "Word.headword": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := word.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "Word.level": %w`, err)}
		}
	}
	return nil
}

func (_u *WordUpdateOne) sqlSave(ctx context.Context) (_node *Word, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(word.Table, word.Columns, sqlgraph.NewFieldSpec(word.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Word.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, word.FieldID)
		for _, f := range fields {
			if !word.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != word.FieldID {
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
	if value, ok := _u.mutation.Headword(); ok {
		_spec.SetField(word.FieldHeadword, field.TypeString, value)
	}
	if value, ok := _u.mutation.Synonyms(); ok {
		_spec.SetField(word.FieldSynonyms, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSynonyms(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, word.FieldSynonyms, value)
		})
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(word.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(word.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(word.FieldActive, field.TypeBool, value)
	}
	_node = &Word{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{word.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
