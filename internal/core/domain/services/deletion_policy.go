package services

import (
	"fmt"
	"strings"

	"eshift/internal/pkg/errs"
)

// Kind names an entity type of the graph.
type Kind string

const (
	KindCustomer      Kind = "customer"
	KindJob           Kind = "job"
	KindLoad          Kind = "load"
	KindProduct       Kind = "product"
	KindLoadProduct   Kind = "load_product"
	KindTransportUnit Kind = "transport_unit"
	KindLorry         Kind = "lorry"
	KindDriver        Kind = "driver"
	KindAssistant     Kind = "assistant"
	KindContainer     Kind = "container"
)

// Kinds lists every kind that can be deleted.
func Kinds() []Kind {
	return []Kind{
		KindCustomer, KindJob, KindLoad, KindProduct, KindLoadProduct,
		KindTransportUnit, KindLorry, KindDriver, KindAssistant, KindContainer,
	}
}

// ParseKind accepts the snake_case name as well as the name without underscores.
func ParseKind(s string) (Kind, error) {
	normalized := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "-", "_"))
	for _, k := range Kinds() {
		if string(k) == normalized || strings.ReplaceAll(string(k), "_", "") == normalized {
			return k, nil
		}
	}
	return "", errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%q is not a deletable entity", s))
}

// Action is what happens to dependents when their principal is deleted.
type Action int

const (
	Cascade Action = iota + 1
	Restrict
	SetNull
)

func (a Action) String() string {
	switch a {
	case Cascade:
		return "CASCADE"
	case Restrict:
		return "RESTRICT"
	case SetNull:
		return "SET NULL"
	}
	return "UNKNOWN"
}

// Rule binds a principal kind to one of its dependent kinds through ForeignKey,
// the dependent's column referencing the principal.
type Rule struct {
	Principal  Kind
	Dependent  Kind
	ForeignKey string
	Action     Action
}

// DeletionPolicy is the referential-integrity table of the entity graph. Storage
// foreign keys are declared with the same actions.
func DeletionPolicy() []Rule {
	return []Rule{
		{Principal: KindCustomer, Dependent: KindJob, ForeignKey: "customer_id", Action: Cascade},
		{Principal: KindCustomer, Dependent: KindProduct, ForeignKey: "customer_id", Action: Restrict},
		{Principal: KindJob, Dependent: KindLoad, ForeignKey: "job_id", Action: Cascade},
		{Principal: KindLoad, Dependent: KindLoadProduct, ForeignKey: "load_id", Action: Cascade},
		{Principal: KindProduct, Dependent: KindLoadProduct, ForeignKey: "product_id", Action: Restrict},
		{Principal: KindTransportUnit, Dependent: KindLoad, ForeignKey: "transport_unit_id", Action: Restrict},
		{Principal: KindLorry, Dependent: KindTransportUnit, ForeignKey: "lorry_id", Action: Restrict},
		{Principal: KindDriver, Dependent: KindTransportUnit, ForeignKey: "driver_id", Action: Restrict},
		{Principal: KindContainer, Dependent: KindTransportUnit, ForeignKey: "container_id", Action: Restrict},
		{Principal: KindAssistant, Dependent: KindTransportUnit, ForeignKey: "assistant_id", Action: SetNull},
	}
}

// RuleFor finds the rule for a dependent's foreign key.
func RuleFor(dependent Kind, foreignKey string) (Rule, bool) {
	for _, r := range DeletionPolicy() {
		if r.Dependent == dependent && r.ForeignKey == foreignKey {
			return r, true
		}
	}
	return Rule{}, false
}
