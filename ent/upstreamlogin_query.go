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
	"github.com/yourmoment/yourmoment/ent/predicate"
	"github.com/yourmoment/yourmoment/ent/process"
	"github.com/yourmoment/yourmoment/ent/upstreamlogin"
	"github.com/yourmoment/yourmoment/ent/workitem"
)

// UpstreamLoginQuery is the builder for querying UpstreamLogin entities.
type UpstreamLoginQuery struct {
	config
	ctx           *QueryContext
	order         []upstreamlogin.OrderOption
	inters        []Interceptor
	predicates    []predicate.UpstreamLogin
	withWorkItems *WorkItemQuery
	withProcesses *ProcessQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the UpstreamLoginQuery builder.
func (_q *UpstreamLoginQuery) Where(ps ...predicate.UpstreamLogin) *UpstreamLoginQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *UpstreamLoginQuery) Limit(limit int) *UpstreamLoginQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *UpstreamLoginQuery) Offset(offset int) *UpstreamLoginQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *UpstreamLoginQuery) Unique(unique bool) *UpstreamLoginQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *UpstreamLoginQuery) Order(o ...upstreamlogin.OrderOption) *UpstreamLoginQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryWorkItems chains the current query on the "work_items" edge.
func (_q *UpstreamLoginQuery) QueryWorkItems() *WorkItemQuery {
	query := (&WorkItemClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(upstreamlogin.Table, upstreamlogin.FieldID, selector),
			sqlgraph.To(workitem.Table, workitem.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, upstreamlogin.WorkItemsTable, upstreamlogin.WorkItemsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryProcesses chains the current query on the "processes" edge.
func (_q *UpstreamLoginQuery) QueryProcesses() *ProcessQuery {
	query := (&ProcessClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(upstreamlogin.Table, upstreamlogin.FieldID, selector),
			sqlgraph.To(process.Table, process.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, true, upstreamlogin.ProcessesTable, upstreamlogin.ProcessesPrimaryKey...),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first UpstreamLogin entity from the query.
// Returns a *NotFoundError when no UpstreamLogin was found.
func (_q *UpstreamLoginQuery) First(ctx context.Context) (*UpstreamLogin, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{upstreamlogin.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *UpstreamLoginQuery) FirstX(ctx context.Context) *UpstreamLogin {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first UpstreamLogin ID from the query.
// Returns a *NotFoundError when no UpstreamLogin ID was found.
func (_q *UpstreamLoginQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{upstreamlogin.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *UpstreamLoginQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single UpstreamLogin entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one UpstreamLogin entity is found.
// Returns a *NotFoundError when no UpstreamLogin entities are found.
func (_q *UpstreamLoginQuery) Only(ctx context.Context) (*UpstreamLogin, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{upstreamlogin.Label}
	default:
		return nil, &NotSingularError{upstreamlogin.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *UpstreamLoginQuery) OnlyX(ctx context.Context) *UpstreamLogin {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only UpstreamLogin ID in the query.
// Returns a *NotSingularError when more than one UpstreamLogin ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *UpstreamLoginQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{upstreamlogin.Label}
	default:
		err = &NotSingularError{upstreamlogin.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *UpstreamLoginQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of UpstreamLogins.
func (_q *UpstreamLoginQuery) All(ctx context.Context) ([]*UpstreamLogin, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*UpstreamLogin, *UpstreamLoginQuery]()
	return withInterceptors[[]*UpstreamLogin](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *UpstreamLoginQuery) AllX(ctx context.Context) []*UpstreamLogin {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of UpstreamLogin IDs.
func (_q *UpstreamLoginQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(upstreamlogin.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *UpstreamLoginQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *UpstreamLoginQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*UpstreamLoginQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *UpstreamLoginQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *UpstreamLoginQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *UpstreamLoginQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the UpstreamLoginQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *UpstreamLoginQuery) Clone() *UpstreamLoginQuery {
	if _q == nil {
		return nil
	}
	return &UpstreamLoginQuery{
		config:        _q.config,
		ctx:           _q.ctx.Clone(),
		order:         append([]upstreamlogin.OrderOption{}, _q.order...),
		inters:        append([]Interceptor{}, _q.inters...),
		predicates:    append([]predicate.UpstreamLogin{}, _q.predicates...),
		withWorkItems: _q.withWorkItems.Clone(),
		withProcesses: _q.withProcesses.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithWorkItems tells the query-builder to eager-load the nodes that are connected to
// the "work_items" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *UpstreamLoginQuery) WithWorkItems(opts ...func(*WorkItemQuery)) *UpstreamLoginQuery {
	query := (&WorkItemClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withWorkItems = query
	return _q
}

// WithProcesses tells the query-builder to eager-load the nodes that are connected to
// the "processes" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *UpstreamLoginQuery) WithProcesses(opts ...func(*ProcessQuery)) *UpstreamLoginQuery {
	query := (&ProcessClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withProcesses = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		UserID string `json:"user_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.UpstreamLogin.Query().
//		GroupBy(upstreamlogin.FieldUserID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *UpstreamLoginQuery) GroupBy(field string, fields ...string) *UpstreamLoginGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &UpstreamLoginGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = upstreamlogin.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		UserID string `json:"user_id,omitempty"`
//	}
//
//	client.UpstreamLogin.Query().
//		Select(upstreamlogin.FieldUserID).
//		Scan(ctx, &v)
func (_q *UpstreamLoginQuery) Select(fields ...string) *UpstreamLoginSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &UpstreamLoginSelect{UpstreamLoginQuery: _q}
	sbuild.label = upstreamlogin.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a UpstreamLoginSelect configured with the given aggregations.
func (_q *UpstreamLoginQuery) Aggregate(fns ...AggregateFunc) *UpstreamLoginSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *UpstreamLoginQuery) prepareQuery(ctx context.Context) error {
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
		if !upstreamlogin.ValidColumn(f) {
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

func (_q *UpstreamLoginQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*UpstreamLogin, error) {
	var (
		nodes       = []*UpstreamLogin{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withWorkItems != nil,
			_q.withProcesses != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*UpstreamLogin).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &UpstreamLogin{config: _q.config}
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
	if query := _q.withWorkItems; query != nil {
		if err := _q.loadWorkItems(ctx, query, nodes,
			func(n *UpstreamLogin) { n.Edges.WorkItems = []*WorkItem{} },
			func(n *UpstreamLogin, e *WorkItem) { n.Edges.WorkItems = append(n.Edges.WorkItems, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withProcesses; query != nil {
		if err := _q.loadProcesses(ctx, query, nodes,
			func(n *UpstreamLogin) { n.Edges.Processes = []*Process{} },
			func(n *UpstreamLogin, e *Process) { n.Edges.Processes = append(n.Edges.Processes, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *UpstreamLoginQuery) loadWorkItems(ctx context.Context, query *WorkItemQuery, nodes []*UpstreamLogin, init func(*UpstreamLogin), assign func(*UpstreamLogin, *WorkItem)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*UpstreamLogin)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(workitem.FieldLoginID)
	}
	query.Where(predicate.WorkItem(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(upstreamlogin.WorkItemsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.LoginID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "login_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *UpstreamLoginQuery) loadProcesses(ctx context.Context, query *ProcessQuery, nodes []*UpstreamLogin, init func(*UpstreamLogin), assign func(*UpstreamLogin, *Process)) error {
	edgeIDs := make([]driver.Value, len(nodes))
	byID := make(map[string]*UpstreamLogin)
	nids := make(map[string]map[*UpstreamLogin]struct{})
	for i, node := range nodes {
		edgeIDs[i] = node.ID
		byID[node.ID] = node
		if init != nil {
			init(node)
		}
	}
	query.Where(func(s *sql.Selector) {
		joinT := sql.Table(upstreamlogin.ProcessesTable)
		s.Join(joinT).On(s.C(process.FieldID), joinT.C(upstreamlogin.ProcessesPrimaryKey[0]))
		s.Where(sql.InValues(joinT.C(upstreamlogin.ProcessesPrimaryKey[1]), edgeIDs...))
		columns := s.SelectedColumns()
		s.Select(joinT.C(upstreamlogin.ProcessesPrimaryKey[1]))
		s.AppendSelect(columns...)
		s.SetDistinct(false)
	})
	if err := query.prepareQuery(ctx); err != nil {
		return err
	}
	qr := QuerierFunc(func(ctx context.Context, q Query) (Value, error) {
		return query.sqlAll(ctx, func(_ context.Context, spec *sqlgraph.QuerySpec) {
			assign := spec.Assign
			values := spec.ScanValues
			spec.ScanValues = func(columns []string) ([]any, error) {
				values, err := values(columns[1:])
				if err != nil {
					return nil, err
				}
				return append([]any{new(sql.NullString)}, values...), nil
			}
			spec.Assign = func(columns []string, values []any) error {
				outValue := values[0].(*sql.NullString).String
				inValue := values[1].(*sql.NullString).String
				if nids[inValue] == nil {
					nids[inValue] = map[*UpstreamLogin]struct{}{byID[outValue]: {}}
					return assign(columns[1:], values[1:])
				}
				nids[inValue][byID[outValue]] = struct{}{}
				return nil
			}
		})
	})
	neighbors, err := withInterceptors[[]*Process](ctx, query, qr, query.inters)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected "processes" node returned %v`, n.ID)
		}
		for kn := range nodes {
			assign(kn, n)
		}
	}
	return nil
}

func (_q *UpstreamLoginQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *UpstreamLoginQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(upstreamlogin.Table, upstreamlogin.Columns, sqlgraph.NewFieldSpec(upstreamlogin.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, upstreamlogin.FieldID)
		for i := range fields {
			if fields[i] != upstreamlogin.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
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

func (_q *UpstreamLoginQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(upstreamlogin.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = upstreamlogin.Columns
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

// UpstreamLoginGroupBy is the group-by builder for UpstreamLogin entities.
type UpstreamLoginGroupBy struct {
	selector
	build *UpstreamLoginQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *UpstreamLoginGroupBy) Aggregate(fns ...AggregateFunc) *UpstreamLoginGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *UpstreamLoginGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*UpstreamLoginQuery, *UpstreamLoginGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *UpstreamLoginGroupBy) sqlScan(ctx context.Context, root *UpstreamLoginQuery, v any) error {
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

// UpstreamLoginSelect is the builder for selecting fields of UpstreamLogin entities.
type UpstreamLoginSelect struct {
	*UpstreamLoginQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *UpstreamLoginSelect) Aggregate(fns ...AggregateFunc) *UpstreamLoginSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *UpstreamLoginSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*UpstreamLoginQuery, *UpstreamLoginSelect](ctx, _s.UpstreamLoginQuery, _s, _s.inters, v)
}

func (_s *UpstreamLoginSelect) sqlScan(ctx context.Context, root *UpstreamLoginQuery, v any) error {
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
