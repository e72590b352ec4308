package main

import (
	"fmt"
	"sheetCalc/contracts"
	"strconv"
	"strings"

	"github.com/expr-lang/expr/ast"
	"github.com/expr-lang/expr/parser"
)

// Formula is a parsed cell expression. The grammar is arithmetic over numbers
// and cell references (+ - * / with unary sign and parentheses) plus the
// aggregate functions MIN, MAX, SUM and AVG.
type Formula struct {
	root ast.Node
	refs []contracts.Position
}

type aggregateFunction func(args []float64) float64

var aggregateFunctions = map[string]aggregateFunction{
	"MIN": calculateMin,
	"MAX": calculateMax,
	"SUM": calculateSum,
	"AVG": calculateAvg,
}

type FormulaEngine struct{}

func NewFormulaEngine() *FormulaEngine {
	return &FormulaEngine{}
}

func (e *FormulaEngine) Parse(expression string) (contracts.Formula, error) {
	return ParseFormula(expression)
}

// ParseFormula builds a Formula from expression text without the leading "=".
func ParseFormula(expression string) (*Formula, error) {
	tree, err := parser.Parse(expression)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", contracts.FormulaSyntaxError, err.Error())
	}

	if err = validateNode(tree.Node); err != nil {
		return nil, err
	}

	visitor := &FindCellRefsVisitor{}
	ast.Walk(&tree.Node, visitor)

	return &Formula{root: tree.Node, refs: visitor.refs}, nil
}

// FindCellRefsVisitor collects every identifier of the expression tree as a
// candidate cell reference, in source order. Aggregate function names are
// skipped.
type FindCellRefsVisitor struct {
	refs []contracts.Position
}

func (v *FindCellRefsVisitor) Visit(node *ast.Node) {
	if identifierNode, ok := (*node).(*ast.IdentifierNode); ok {
		if _, isFunction := aggregateFunctions[identifierNode.Value]; isFunction {
			return
		}
		v.refs = append(v.refs, contracts.PositionFromString(identifierNode.Value))
	}
}

func validateNode(node ast.Node) error {
	switch n := node.(type) {
	case *ast.IntegerNode, *ast.FloatNode, *ast.IdentifierNode:
		return nil
	case *ast.UnaryNode:
		if n.Operator != "+" && n.Operator != "-" {
			return fmt.Errorf("%w: unsupported operator %q", contracts.FormulaSyntaxError, n.Operator)
		}
		return validateNode(n.Node)
	case *ast.BinaryNode:
		switch n.Operator {
		case "+", "-", "*", "/":
		default:
			return fmt.Errorf("%w: unsupported operator %q", contracts.FormulaSyntaxError, n.Operator)
		}
		if err := validateNode(n.Left); err != nil {
			return err
		}
		return validateNode(n.Right)
	case *ast.CallNode:
		identifierNode, ok := n.Callee.(*ast.IdentifierNode)
		if !ok {
			return fmt.Errorf("%w: unsupported call", contracts.FormulaSyntaxError)
		}
		if _, ok = aggregateFunctions[identifierNode.Value]; !ok {
			return fmt.Errorf("%w: unknown function %q", contracts.FormulaSyntaxError, identifierNode.Value)
		}
		if len(n.Arguments) == 0 {
			return fmt.Errorf("%w: function %q needs arguments", contracts.FormulaSyntaxError, identifierNode.Value)
		}
		for _, argument := range n.Arguments {
			if err := validateNode(argument); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("%w: unsupported expression", contracts.FormulaSyntaxError)
}

func (f *Formula) Evaluate(resolver contracts.CellValueResolver) (float64, error) {
	return evaluateNode(f.root, resolver)
}

func (f *Formula) ReferencedCells() []contracts.Position {
	return f.refs
}

func (f *Formula) Expression() string {
	var out strings.Builder
	printNode(&out, f.root)
	return out.String()
}

func evaluateNode(node ast.Node, resolver contracts.CellValueResolver) (float64, error) {
	switch n := node.(type) {
	case *ast.IntegerNode:
		return float64(n.Value), nil
	case *ast.FloatNode:
		return n.Value, nil
	case *ast.IdentifierNode:
		return resolver(contracts.PositionFromString(n.Value))
	case *ast.UnaryNode:
		value, err := evaluateNode(n.Node, resolver)
		if err != nil {
			return 0, err
		}
		if n.Operator == "-" {
			return -value, nil
		}
		return value, nil
	case *ast.BinaryNode:
		left, err := evaluateNode(n.Left, resolver)
		if err != nil {
			return 0, err
		}
		right, err := evaluateNode(n.Right, resolver)
		if err != nil {
			return 0, err
		}
		switch n.Operator {
		case "+":
			return left + right, nil
		case "-":
			return left - right, nil
		case "*":
			return left * right, nil
		case "/":
			if right == 0 {
				return 0, contracts.FormulaError{Category: contracts.FormulaErrorDiv0}
			}
			return left / right, nil
		}
	case *ast.CallNode:
		function := aggregateFunctions[n.Callee.(*ast.IdentifierNode).Value]
		args := make([]float64, len(n.Arguments))
		for index, argument := range n.Arguments {
			value, err := evaluateNode(argument, resolver)
			if err != nil {
				return 0, err
			}
			args[index] = value
		}
		return function(args), nil
	}
	return 0, contracts.FormulaError{Category: contracts.FormulaErrorValue}
}

// Operator precedence for canonical printing. Leaves and calls bind tightest.
func nodePrecedence(node ast.Node) int {
	switch n := node.(type) {
	case *ast.BinaryNode:
		if n.Operator == "+" || n.Operator == "-" {
			return 1
		}
		return 2
	case *ast.UnaryNode:
		return 3
	}
	return 4
}

func printNode(out *strings.Builder, node ast.Node) {
	switch n := node.(type) {
	case *ast.IntegerNode:
		out.WriteString(strconv.Itoa(n.Value))
	case *ast.FloatNode:
		out.WriteString(strconv.FormatFloat(n.Value, 'f', -1, 64))
	case *ast.IdentifierNode:
		out.WriteString(n.Value)
	case *ast.UnaryNode:
		out.WriteString(n.Operator)
		printChildNode(out, n.Node, nodePrecedence(n.Node) < 4)
	case *ast.BinaryNode:
		precedence := nodePrecedence(n)
		printChildNode(out, n.Left, nodePrecedence(n.Left) < precedence)

		out.WriteString(n.Operator)

		// The right operand keeps parentheses on equal precedence for the
		// non-commutative operators: A1-(B1-C1) is not A1-B1-C1.
		rightPrecedence := nodePrecedence(n.Right)
		needsParens := rightPrecedence < precedence ||
			(rightPrecedence == precedence && (n.Operator == "-" || n.Operator == "/"))
		printChildNode(out, n.Right, needsParens)
	case *ast.CallNode:
		printNode(out, n.Callee)
		out.WriteByte('(')
		for index, argument := range n.Arguments {
			if index > 0 {
				out.WriteByte(',')
			}
			printNode(out, argument)
		}
		out.WriteByte(')')
	}
}

func printChildNode(out *strings.Builder, node ast.Node, needsParens bool) {
	if needsParens {
		out.WriteByte('(')
		printNode(out, node)
		out.WriteByte(')')
		return
	}
	printNode(out, node)
}

func calculateMin(args []float64) float64 {
	minValue := args[0]
	for _, arg := range args[1:] {
		if arg < minValue {
			minValue = arg
		}
	}
	return minValue
}

func calculateMax(args []float64) float64 {
	maxValue := args[0]
	for _, arg := range args[1:] {
		if arg > maxValue {
			maxValue = arg
		}
	}
	return maxValue
}

func calculateSum(args []float64) float64 {
	sum := 0.0
	for _, arg := range args {
		sum += arg
	}
	return sum
}

func calculateAvg(args []float64) float64 {
	return calculateSum(args) / float64(len(args))
}
