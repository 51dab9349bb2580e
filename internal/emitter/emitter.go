package emitter

import (
	"github.com/pkg/errors"
	"tinygo.org/x/go-llvm"

	"github.com/kievzenit/ylox/internal/hir"
	hir_types "github.com/kievzenit/ylox/internal/hir/types"
)

// MainFuncName is the function that computes the program's value.
const MainFuncName = "ylox_main"

type Emitter struct {
	program *hir.ProgramHir

	typesMap map[string]llvm.Type
	funcsMap map[string]llvm.Value

	context llvm.Context
	module  llvm.Module
	builder llvm.Builder
}

// NewEmitter allocates an LLVM context that lives until Dispose.
func NewEmitter(program *hir.ProgramHir) *Emitter {
	context := llvm.NewContext()
	return &Emitter{
		program: program,

		typesMap: make(map[string]llvm.Type),
		funcsMap: make(map[string]llvm.Value),

		context: context,
		module:  context.NewModule("main"),
		builder: context.NewBuilder(),
	}
}

// Emit builds and verifies the module. The module belongs to the emitter
// and is freed by Dispose. Emit must be called at most once.
func (e *Emitter) Emit() (llvm.Module, error) {
	e.declareTypes()
	e.declareExterns()

	e.emitForProgramHir(e.program)

	if err := llvm.VerifyModule(e.module, llvm.ReturnStatusAction); err != nil {
		return e.module, errors.Wrap(err, "invalid module")
	}

	return e.module, nil
}

func (e *Emitter) Dispose() {
	e.builder.Dispose()
	e.context.Dispose()
}

func (e *Emitter) getLlvmTypeForType(hirType hir_types.Type) llvm.Type {
	if llvmType, ok := e.typesMap[hirType.Type()]; ok {
		return llvmType
	}

	panic("type not found")
}

func (e *Emitter) declareTypes() {
	ptrType := llvm.PointerType(e.context.Int8Type(), 0)

	e.typesMap["number"] = e.context.DoubleType()
	e.typesMap["bool"] = e.context.Int1Type()
	e.typesMap["string"] = ptrType
	e.typesMap["nil"] = ptrType
}

func (e *Emitter) declareExterns() {
	ptrType := e.typesMap["string"]

	for _, extern := range e.program.Externs {
		var funcType llvm.Type
		switch extern {
		case hir.StringConcat:
			funcType = llvm.FunctionType(ptrType, []llvm.Type{ptrType, ptrType}, false)
		case hir.StringEqual:
			funcType = llvm.FunctionType(e.typesMap["bool"], []llvm.Type{ptrType, ptrType}, false)
		default:
			panic("not implemented")
		}

		funcValue := llvm.AddFunction(e.module, extern.Name(), funcType)
		e.funcsMap[extern.Name()] = funcValue
	}
}

func (e *Emitter) emitForProgramHir(program *hir.ProgramHir) {
	returnType := e.getLlvmTypeForType(program.ResultType())
	funcType := llvm.FunctionType(returnType, nil, false)
	funcValue := llvm.AddFunction(e.module, MainFuncName, funcType)
	e.funcsMap[MainFuncName] = funcValue

	framePointerAttr := e.context.CreateStringAttribute("frame-pointer", "all")
	noTrappingMathAttr := e.context.CreateStringAttribute("no-trapping-math", "true")
	funcValue.AddFunctionAttr(framePointerAttr)
	funcValue.AddFunctionAttr(noTrappingMathAttr)

	entryBasicBlock := e.context.AddBasicBlock(funcValue, "entry")
	e.builder.SetInsertPointAtEnd(entryBasicBlock)

	e.builder.CreateRet(e.emitForExprHir(program.Expr))
}

func (e *Emitter) emitForExprHir(exprHir hir.ExprHir) llvm.Value {
	switch exprHir := exprHir.(type) {
	case *hir.NumberExprHir:
		return e.emitForNumberExprHir(exprHir)
	case *hir.StringExprHir:
		return e.emitForStringExprHir(exprHir)
	case *hir.BoolExprHir:
		return e.emitForBoolExprHir(exprHir)
	case *hir.NilExprHir:
		return e.emitForNilExprHir(exprHir)
	case *hir.UnaryExprHir:
		return e.emitForUnaryExprHir(exprHir)
	case *hir.BinaryExprHir:
		return e.emitForBinExprHir(exprHir)
	default:
		panic("not implemented")
	}
}

func (e *Emitter) emitForUnaryExprHir(unaryExprHir *hir.UnaryExprHir) llvm.Value {
	operandType := unaryExprHir.Operand.ExprType()

	switch unaryExprHir.Op {
	case hir.Neg:
		value := e.emitForExprHir(unaryExprHir.Operand)
		return e.builder.CreateFNeg(value, "negtmp")
	case hir.Not:
		switch operandType.(type) {
		case *hir_types.BoolType:
			value := e.emitForExprHir(unaryExprHir.Operand)
			return e.builder.CreateXor(value, e.constBool(true), "nottmp")
		case *hir_types.NilType:
			return e.constBool(true)
		default:
			// numbers and strings are always truthy
			return e.constBool(false)
		}
	default:
		panic("not implemented")
	}
}

func (e *Emitter) emitForBinExprHir(binExprHir *hir.BinaryExprHir) llvm.Value {
	leftType := binExprHir.Left.ExprType()
	rightType := binExprHir.Right.ExprType()

	if binExprHir.Op == hir.Eq || binExprHir.Op == hir.Ne {
		if !leftType.SameAs(rightType) {
			return e.constBool(binExprHir.Op == hir.Ne)
		}
		if _, ok := leftType.(*hir_types.NilType); ok {
			return e.constBool(binExprHir.Op == hir.Eq)
		}
	}

	leftValue := e.emitForExprHir(binExprHir.Left)
	rightValue := e.emitForExprHir(binExprHir.Right)

	switch leftType.(type) {
	case *hir_types.NumberType:
		return e.emitForNumberBinExpr(binExprHir.Op, leftValue, rightValue)
	case *hir_types.StringType:
		return e.emitForStringBinExpr(binExprHir.Op, leftValue, rightValue)
	case *hir_types.BoolType:
		switch binExprHir.Op {
		case hir.Eq:
			return e.builder.CreateICmp(llvm.IntEQ, leftValue, rightValue, "eqtmp")
		case hir.Ne:
			return e.builder.CreateICmp(llvm.IntNE, leftValue, rightValue, "netmp")
		}
	}

	panic("not implemented")
}

func (e *Emitter) emitForNumberBinExpr(op hir.BinaryOp, leftValue, rightValue llvm.Value) llvm.Value {
	switch op {
	case hir.Add:
		return e.builder.CreateFAdd(leftValue, rightValue, "addtmp")
	case hir.Sub:
		return e.builder.CreateFSub(leftValue, rightValue, "subtmp")
	case hir.Mul:
		return e.builder.CreateFMul(leftValue, rightValue, "multmp")
	case hir.Div:
		return e.builder.CreateFDiv(leftValue, rightValue, "divtmp")
	case hir.Gt:
		return e.builder.CreateFCmp(llvm.FloatOGT, leftValue, rightValue, "gttmp")
	case hir.Ge:
		return e.builder.CreateFCmp(llvm.FloatOGE, leftValue, rightValue, "getmp")
	case hir.Lt:
		return e.builder.CreateFCmp(llvm.FloatOLT, leftValue, rightValue, "lttmp")
	case hir.Le:
		return e.builder.CreateFCmp(llvm.FloatOLE, leftValue, rightValue, "letmp")
	case hir.Eq:
		return e.builder.CreateFCmp(llvm.FloatOEQ, leftValue, rightValue, "eqtmp")
	case hir.Ne:
		// unordered, so that NaN != NaN
		return e.builder.CreateFCmp(llvm.FloatUNE, leftValue, rightValue, "netmp")
	default:
		panic("not implemented")
	}
}

func (e *Emitter) emitForStringBinExpr(op hir.BinaryOp, leftValue, rightValue llvm.Value) llvm.Value {
	switch op {
	case hir.Add:
		return e.emitCall(hir.StringConcat, "concattmp", leftValue, rightValue)
	case hir.Eq:
		return e.emitCall(hir.StringEqual, "eqtmp", leftValue, rightValue)
	case hir.Ne:
		equal := e.emitCall(hir.StringEqual, "eqtmp", leftValue, rightValue)
		return e.builder.CreateXor(equal, e.constBool(true), "netmp")
	default:
		panic("not implemented")
	}
}

func (e *Emitter) emitCall(extern hir.Extern, name string, args ...llvm.Value) llvm.Value {
	funcValue, ok := e.funcsMap[extern.Name()]
	if !ok {
		panic("extern not declared: " + extern.Name())
	}

	return e.builder.CreateCall(funcValue.GlobalValueType(), funcValue, args, name)
}

func (e *Emitter) emitForNumberExprHir(numberExprHir *hir.NumberExprHir) llvm.Value {
	return llvm.ConstFloat(e.getLlvmTypeForType(numberExprHir.ExprType()), numberExprHir.Value)
}

func (e *Emitter) emitForStringExprHir(stringExprHir *hir.StringExprHir) llvm.Value {
	return e.builder.CreateGlobalStringPtr(stringExprHir.Value, ".str")
}

func (e *Emitter) emitForBoolExprHir(boolExprHir *hir.BoolExprHir) llvm.Value {
	return e.constBool(boolExprHir.Value)
}

func (e *Emitter) emitForNilExprHir(nilExprHir *hir.NilExprHir) llvm.Value {
	return llvm.ConstPointerNull(e.getLlvmTypeForType(nilExprHir.ExprType()))
}

func (e *Emitter) constBool(value bool) llvm.Value {
	var intValue uint64
	if value {
		intValue = 1
	}

	return llvm.ConstInt(e.typesMap["bool"], intValue, false)
}
