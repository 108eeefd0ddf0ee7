package agent

import (
	"fmt"

	"emberheap/pkg/kind"
	"emberheap/pkg/records"
	"emberheap/pkg/value"
)

// mustIndex panics if v does not address k's vector — a caller passing
// the wrong Value to a typed getter is a programmer error, not a
// recoverable runtime condition.
func mustIndex(v value.Value, k kind.Kind) uint32 {
	gotKind, ok := v.Kind()
	if !ok || gotKind != k {
		panic(fmt.Sprintf("agent: expected a %v value, got %v", k, v))
	}
	idx, _ := v.HeapIndex()
	return idx
}

// GetObject returns a mutable pointer to v's ObjectData. It panics if
// v is not a kind.Object value.
func (a *Agent) GetObject(v value.Value) *records.ObjectData {
	return a.objects.GetPtr(mustIndex(v, kind.Object))
}

// GetArray returns a mutable pointer to v's ArrayData.
func (a *Agent) GetArray(v value.Value) *records.ArrayData {
	return a.arrays.GetPtr(mustIndex(v, kind.Array))
}

// GetFunction returns a mutable pointer to v's FunctionData.
func (a *Agent) GetFunction(v value.Value) *records.FunctionData {
	return a.functions.GetPtr(mustIndex(v, kind.OrdinaryFunction))
}

// GetBuiltinFunction returns a mutable pointer to v's
// BuiltinFunctionData.
func (a *Agent) GetBuiltinFunction(v value.Value) *records.BuiltinFunctionData {
	return a.builtinFunctions.GetPtr(mustIndex(v, kind.BuiltinFunction))
}

// GetBoundFunction returns a mutable pointer to v's BoundFunctionData.
func (a *Agent) GetBoundFunction(v value.Value) *records.BoundFunctionData {
	return a.boundFunctions.GetPtr(mustIndex(v, kind.BoundFunction))
}

// GetHeapString returns a mutable pointer to v's StringData.
func (a *Agent) GetHeapString(v value.Value) *records.StringData {
	return a.strings.GetPtr(mustIndex(v, kind.String))
}

// GetSymbol returns a mutable pointer to v's SymbolData.
func (a *Agent) GetSymbol(v value.Value) *records.SymbolData {
	return a.symbols.GetPtr(mustIndex(v, kind.Symbol))
}

// GetHeapBigInt returns a mutable pointer to v's BigIntData.
func (a *Agent) GetHeapBigInt(v value.Value) *records.BigIntData {
	return a.bigints.GetPtr(mustIndex(v, kind.BigInt))
}

// GetHeapNumber returns a mutable pointer to v's NumberData.
func (a *Agent) GetHeapNumber(v value.Value) *records.NumberData {
	return a.numbers.GetPtr(mustIndex(v, kind.Number))
}

// GetArrayBuffer returns a mutable pointer to v's ArrayBufferData.
func (a *Agent) GetArrayBuffer(v value.Value) *records.ArrayBufferData {
	return a.arrayBuffers.GetPtr(mustIndex(v, kind.ArrayBuffer))
}

// GetDataView returns a mutable pointer to v's DataViewData.
func (a *Agent) GetDataView(v value.Value) *records.DataViewData {
	return a.dataViews.GetPtr(mustIndex(v, kind.DataView))
}

// GetTypedArray returns a mutable pointer to v's TypedArrayData.
func (a *Agent) GetTypedArray(v value.Value) *records.TypedArrayData {
	return a.typedArrays.GetPtr(mustIndex(v, kind.TypedArray))
}

// GetMap returns a mutable pointer to v's MapData.
func (a *Agent) GetMap(v value.Value) *records.MapData {
	return a.maps.GetPtr(mustIndex(v, kind.Map))
}

// GetSet returns a mutable pointer to v's SetData.
func (a *Agent) GetSet(v value.Value) *records.SetData {
	return a.sets.GetPtr(mustIndex(v, kind.Set))
}

// GetWeakMap returns a mutable pointer to v's WeakMapData.
func (a *Agent) GetWeakMap(v value.Value) *records.WeakMapData {
	return a.weakMaps.GetPtr(mustIndex(v, kind.WeakMap))
}

// GetWeakSet returns a mutable pointer to v's WeakSetData.
func (a *Agent) GetWeakSet(v value.Value) *records.WeakSetData {
	return a.weakSets.GetPtr(mustIndex(v, kind.WeakSet))
}

// GetDate returns a mutable pointer to v's DateData.
func (a *Agent) GetDate(v value.Value) *records.DateData {
	return a.dates.GetPtr(mustIndex(v, kind.Date))
}

// GetRegExp returns a mutable pointer to v's RegExpData.
func (a *Agent) GetRegExp(v value.Value) *records.RegExpData {
	return a.regexps.GetPtr(mustIndex(v, kind.RegExp))
}

// GetError returns a mutable pointer to v's ErrorData.
func (a *Agent) GetError(v value.Value) *records.ErrorData {
	return a.errors.GetPtr(mustIndex(v, kind.Error))
}

// GetProxy returns a mutable pointer to v's ProxyData.
func (a *Agent) GetProxy(v value.Value) *records.ProxyData {
	return a.proxies.GetPtr(mustIndex(v, kind.Proxy))
}

// GetPromise returns a mutable pointer to v's PromiseData.
func (a *Agent) GetPromise(v value.Value) *records.PromiseData {
	return a.promises.GetPtr(mustIndex(v, kind.Promise))
}

// GetIterator returns a mutable pointer to v's IteratorData.
func (a *Agent) GetIterator(v value.Value) *records.IteratorData {
	return a.iterators.GetPtr(mustIndex(v, kind.Iterator))
}

// GetEnvironmentRecord returns a mutable pointer to v's
// EnvironmentRecordData.
func (a *Agent) GetEnvironmentRecord(v value.Value) *records.EnvironmentRecordData {
	return a.environmentRecords.GetPtr(mustIndex(v, kind.EnvironmentRecord))
}

// GetRealm returns a mutable pointer to v's RealmData.
func (a *Agent) GetRealm(v value.Value) *records.RealmData {
	return a.realms.GetPtr(mustIndex(v, kind.Realm))
}

// GetScript returns a mutable pointer to v's ScriptData.
func (a *Agent) GetScript(v value.Value) *records.ScriptData {
	return a.scripts.GetPtr(mustIndex(v, kind.Script))
}

// GetModule returns a mutable pointer to v's ModuleData.
func (a *Agent) GetModule(v value.Value) *records.ModuleData {
	return a.modules.GetPtr(mustIndex(v, kind.Module))
}

// GetExecutionContext returns a mutable pointer to v's
// ExecutionContextData.
func (a *Agent) GetExecutionContext(v value.Value) *records.ExecutionContextData {
	return a.executionContexts.GetPtr(mustIndex(v, kind.ExecutionContext))
}

// GetReferenceRecord returns a mutable pointer to v's
// ReferenceRecordData.
func (a *Agent) GetReferenceRecord(v value.Value) *records.ReferenceRecordData {
	return a.referenceRecords.GetPtr(mustIndex(v, kind.ReferenceRecord))
}

// GetPropertyDescriptor returns a mutable pointer to v's
// PropertyDescriptorData.
func (a *Agent) GetPropertyDescriptor(v value.Value) *records.PropertyDescriptorData {
	return a.propertyDescriptors.GetPtr(mustIndex(v, kind.PropertyDescriptor))
}

// GetPropertyKeyStorage returns a mutable pointer to v's
// PropertyKeyStorageData.
func (a *Agent) GetPropertyKeyStorage(v value.Value) *records.PropertyKeyStorageData {
	return a.propertyKeyStorages.GetPtr(mustIndex(v, kind.PropertyKeyStorage))
}

// GetShape returns a mutable pointer to v's ShapeData.
func (a *Agent) GetShape(v value.Value) *records.ShapeData {
	return a.shapes.GetPtr(mustIndex(v, kind.Shape))
}
