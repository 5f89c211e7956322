// Package plan turns type declarations into RenderPlans consumed by code
// generation.
//
// Planning pipeline, per type:
//  1. Validate the shape: only structs with named fields are accepted
//  2. For each field, in declaration order, extract the debug tag
//  3. Emit one FieldPlan per field: default rendering or a custom format
//
// Any error diagnostic aborts the type; BuildAll yields no plans at all when
// one type fails.
package plan
