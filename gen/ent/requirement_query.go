// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Zoli1212/awsflow/gen/ent/offer"
	"github.com/Zoli1212/awsflow/gen/ent/predicate"
	"github.com/Zoli1212/awsflow/gen/ent/requirement"
	"github.com/Zoli1212/awsflow/gen/ent/work"
	"github.com/google/uuid"
)

// RequirementQuery is the builder for querying Requirement entities.
type RequirementQuery struct {
	config
	ctx        *QueryContext
	order      []requirement.OrderOption
	inters     []Interceptor
	predicates []predicate.Requirement
	withWork   *WorkQuery
	withOffers *OfferQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the RequirementQuery builder.
func (_q *RequirementQuery) Where(ps ...predicate.Requirement) *RequirementQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *RequirementQuery) Limit(limit int) *RequirementQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *RequirementQuery) Offset(offset int) *RequirementQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *RequirementQuery) Unique(unique bool) *RequirementQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *RequirementQuery) Order(o ...requirement.OrderOption) *RequirementQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryWork chains the current query on the "work" edge.
func (_q *RequirementQuery) QueryWork() *WorkQuery {
	query := (&WorkClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(requirement.Table, requirement.FieldID, selector),
			sqlgraph.To(work.Table, work.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, requirement.WorkTable, requirement.WorkColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryOffers chains the current query on the "offers" edge.
func (_q *RequirementQuery) QueryOffers() *OfferQuery {
	query := (&OfferClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(requirement.Table, requirement.FieldID, selector),
			sqlgraph.To(offer.Table, offer.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, requirement.OffersTable, requirement.OffersColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Requirement entity from the query.
// Returns a *NotFoundError when no Requirement was found.
func (_q *RequirementQuery) First(ctx context.Context) (*Requirement, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{requirement.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *RequirementQuery) FirstX(ctx context.Context) *Requirement {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Requirement ID from the query.
// Returns a *NotFoundError when no Requirement ID was found.
func (_q *RequirementQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{requirement.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *RequirementQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Requirement entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Requirement entity is found.
// Returns a *NotFoundError when no Requirement entities are found.
func (_q *RequirementQuery) Only(ctx context.Context) (*Requirement, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{requirement.Label}
	default:
		return nil, &NotSingularError{requirement.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *RequirementQuery) OnlyX(ctx context.Context) *Requirement {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Requirement ID in the query.
// Returns a *NotSingularError when more than one Requirement ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *RequirementQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{requirement.Label}
	default:
		err = &NotSingularError{requirement.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *RequirementQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Requirements.
func (_q *RequirementQuery) All(ctx context.Context) ([]*Requirement, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Requirement, *RequirementQuery]()
	return withInterceptors[[]*Requirement](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *RequirementQuery) AllX(ctx context.Context) []*Requirement {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Requirement IDs.
func (_q *RequirementQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(requirement.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *RequirementQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *RequirementQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*RequirementQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *RequirementQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *RequirementQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *RequirementQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the RequirementQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *RequirementQuery) Clone() *RequirementQuery {
	if _q == nil {
		return nil
	}
	return &RequirementQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]requirement.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.Requirement{}, _q.predicates...),
		withWork:   _q.withWork.Clone(),
		withOffers: _q.withOffers.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithWork tells the query-builder to eager-load the nodes that are connected to
// the "work" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *RequirementQuery) WithWork(opts ...func(*WorkQuery)) *RequirementQuery {
	query := (&WorkClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withWork = query
	return _q
}

// WithOffers tells the query-builder to eager-load the nodes that are connected to
// the "offers" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *RequirementQuery) WithOffers(opts ...func(*OfferQuery)) *RequirementQuery {
	query := (&OfferClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withOffers = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		WorkID uuid.UUID `json:"work_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Requirement.Query().
//		GroupBy(requirement.FieldWorkID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *RequirementQuery) GroupBy(field string, fields ...string) *RequirementGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &RequirementGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = requirement.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		WorkID uuid.UUID `json:"work_id,omitempty"`
//	}
//
//	client.Requirement.Query().
//		Select(requirement.FieldWorkID).
//		Scan(ctx, &v)
func (_q *RequirementQuery) Select(fields ...string) *RequirementSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &RequirementSelect{RequirementQuery: _q}
	sbuild.label = requirement.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a RequirementSelect configured with the given aggregations.
func (_q *RequirementQuery) Aggregate(fns ...AggregateFunc) *RequirementSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *RequirementQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !requirement.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *RequirementQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Requirement, error) {
	var (
		nodes       = []*Requirement{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withWork != nil,
			_q.withOffers != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Requirement).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Requirement{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withWork; query != nil {
		if err := _q.loadWork(ctx, query, nodes, nil,
			func(n *Requirement, e *Work) { n.Edges.Work = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withOffers; query != nil {
		if err := _q.loadOffers(ctx, query, nodes,
			func(n *Requirement) { n.Edges.Offers = []*Offer{} },
			func(n *Requirement, e *Offer) { n.Edges.Offers = append(n.Edges.Offers, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *RequirementQuery) loadWork(ctx context.Context, query *WorkQuery, nodes []*Requirement, init func(*Requirement), assign func(*Requirement, *Work)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*Requirement)
	for i := range nodes {
		fk := nodes[i].WorkID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(work.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "work_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *RequirementQuery) loadOffers(ctx context.Context, query *OfferQuery, nodes []*Requirement, init func(*Requirement), assign func(*Requirement, *Offer)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Requirement)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(offer.FieldRequirementID)
	}
	query.Where(predicate.Offer(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(requirement.OffersColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.RequirementID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "requirement_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *RequirementQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *RequirementQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(requirement.Table, requirement.Columns, sqlgraph.NewFieldSpec(requirement.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, requirement.FieldID)
		for i := range fields {
			if fields[i] != requirement.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withWork != nil {
			_spec.Node.AddColumnOnce(requirement.FieldWorkID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *RequirementQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(requirement.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = requirement.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// RequirementGroupBy is the group-by builder for Requirement entities.
type RequirementGroupBy struct {
	selector
	build *RequirementQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *RequirementGroupBy) Aggregate(fns ...AggregateFunc) *RequirementGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *RequirementGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*RequirementQuery, *RequirementGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *RequirementGroupBy) sqlScan(ctx context.Context, root *RequirementQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// RequirementSelect is the builder for selecting fields of Requirement entities.
type RequirementSelect struct {
	*RequirementQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *RequirementSelect) Aggregate(fns ...AggregateFunc) *RequirementSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *RequirementSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*RequirementQuery, *RequirementSelect](ctx, _s.RequirementQuery, _s, _s.inters, v)
}

func (_s *RequirementSelect) sqlScan(ctx context.Context, root *RequirementQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
