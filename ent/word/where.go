// Code generated by ent, DO NOT EDIT.

package word

import (
	"entgo.io/ent/dialect/sql"
	"github.com/gallegodamar/sinonimoak/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Word {
	return predicate.Word(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Word {
	return predicate.Word(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Word {
	return predicate.Word(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Word {
	return predicate.Word(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Word {
	return predicate.Word(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Word {
	return predicate.Word(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Word {
	return predicate.Word(sql.FieldLTE(FieldID, id))
}

// Headword applies equality check predicate on the "headword" field. It's identical to HeadwordEQ.
func Headword(v string) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldHeadword, v))
}

// Level applies equality check predicate on the "level" field. It's identical to LevelEQ.
func Level(v int) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldLevel, v))
}

// Active applies equality check predicate on the "active" field. It's identical to ActiveEQ.
func Active(v bool) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldActive, v))
}

// HeadwordEQ applies the EQ predicate on the "headword" field.
func HeadwordEQ(v string) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldHeadword, v))
}

// HeadwordNEQ applies the NEQ predicate on the "headword" field.
func HeadwordNEQ(v string) predicate.Word {
	return predicate.Word(sql.FieldNEQ(FieldHeadword, v))
}

// HeadwordIn applies the In predicate on the "headword" field.
func HeadwordIn(vs ...string) predicate.Word {
	return predicate.Word(sql.FieldIn(FieldHeadword, vs...))
}

// HeadwordNotIn applies the NotIn predicate on the "headword" field.
func HeadwordNotIn(vs ...string) predicate.Word {
	return predicate.Word(sql.FieldNotIn(FieldHeadword, vs...))
}

// HeadwordGT applies the GT predicate on the "headword" field.
func HeadwordGT(v string) predicate.Word {
	return predicate.Word(sql.FieldGT(FieldHeadword, v))
}

// HeadwordGTE applies the GTE predicate on the "headword" field.
func HeadwordGTE(v string) predicate.Word {
	return predicate.Word(sql.FieldGTE(FieldHeadword, v))
}

// HeadwordLT applies the LT predicate on the "headword" field.
func HeadwordLT(v string) predicate.Word {
	return predicate.Word(sql.FieldLT(FieldHeadword, v))
}

// HeadwordLTE applies the LTE predicate on the "headword" field.
func HeadwordLTE(v string) predicate.Word {
	return predicate.Word(sql.FieldLTE(FieldHeadword, v))
}

// HeadwordContains applies the Contains predicate on the "headword" field.
func HeadwordContains(v string) predicate.Word {
	return predicate.Word(sql.FieldContains(FieldHeadword, v))
}

// HeadwordHasPrefix applies the HasPrefix predicate on the "headword" field.
func HeadwordHasPrefix(v string) predicate.Word {
	return predicate.Word(sql.FieldHasPrefix(FieldHeadword, v))
}

// HeadwordHasSuffix applies the HasSuffix predicate on the "headword" field.
func HeadwordHasSuffix(v string) predicate.Word {
	return predicate.Word(sql.FieldHasSuffix(FieldHeadword, v))
}

// HeadwordEqualFold applies the EqualFold predicate on the "headword" field.
func HeadwordEqualFold(v string) predicate.Word {
	return predicate.Word(sql.FieldEqualFold(FieldHeadword, v))
}

// HeadwordContainsFold applies the ContainsFold predicate on the "headword" field.
func HeadwordContainsFold(v string) predicate.Word {
	return predicate.Word(sql.FieldContainsFold(FieldHeadword, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v int) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v int) predicate.Word {
	return predicate.Word(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...int) predicate.Word {
	return predicate.Word(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...int) predicate.Word {
	return predicate.Word(sql.FieldNotIn(FieldLevel, vs...))
}

// LevelGT applies the GT predicate on the "level" field.
func LevelGT(v int) predicate.Word {
	return predicate.Word(sql.FieldGT(FieldLevel, v))
}

// LevelGTE applies the GTE predicate on the "level" field.
func LevelGTE(v int) predicate.Word {
	return predicate.Word(sql.FieldGTE(FieldLevel, v))
}

// LevelLT applies the LT predicate on the "level" field.
func LevelLT(v int) predicate.Word {
	return predicate.Word(sql.FieldLT(FieldLevel, v))
}

// LevelLTE applies the LTE predicate on the "level" field.
func LevelLTE(v int) predicate.Word {
	return predicate.Word(sql.FieldLTE(FieldLevel, v))
}

// ActiveEQ applies the EQ predicate on the "active" field.
func ActiveEQ(v bool) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldActive, v))
}

// ActiveNEQ applies the NEQ predicate on the "active" field.
func ActiveNEQ(v bool) predicate.Word {
	return predicate.Word(sql.FieldNEQ(FieldActive, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Word) predicate.Word {
	return predicate.Word(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Word) predicate.Word {
	return predicate.Word(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Word) predicate.Word {
	return predicate.Word(sql.NotPredicates(p))
}
