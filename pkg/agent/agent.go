// Package agent owns the heap: one Vector per kind, the scoped and
// global reference tables, and the bind/unbind token discipline
// (spec §4.D, §4.E) that stands in for a borrow checker in a language
// without lifetimes. Package gc operates on an *Agent to run a
// collection cycle; it never needs to know the concrete record type
// behind any given kind, only the trace.Collection view agent builds
// for it.
package agent

import (
	"emberheap/pkg/config"
	"emberheap/pkg/heapvec"
	"emberheap/pkg/kind"
	"emberheap/pkg/records"
	"emberheap/pkg/refs"
	"emberheap/pkg/trace"
	"emberheap/pkg/value"
)

// Agent is one ECMAScript agent: its heap, its realms, and its
// execution context stack (spec §4.B, §4.G Phase 1 names the context
// stack and realm set as roots alongside the reference tables).
type Agent struct {
	cfg *config.RealmConfig

	epoch  uint64
	allocs uint64

	objects             *heapvec.Vector[records.ObjectData]
	arrays              *heapvec.Vector[records.ArrayData]
	functions           *heapvec.Vector[records.FunctionData]
	builtinFunctions    *heapvec.Vector[records.BuiltinFunctionData]
	boundFunctions      *heapvec.Vector[records.BoundFunctionData]
	strings             *heapvec.Vector[records.StringData]
	symbols             *heapvec.Vector[records.SymbolData]
	bigints             *heapvec.Vector[records.BigIntData]
	numbers             *heapvec.Vector[records.NumberData]
	arrayBuffers        *heapvec.Vector[records.ArrayBufferData]
	dataViews           *heapvec.Vector[records.DataViewData]
	typedArrays         *heapvec.Vector[records.TypedArrayData]
	maps                *heapvec.Vector[records.MapData]
	sets                *heapvec.Vector[records.SetData]
	weakMaps            *heapvec.Vector[records.WeakMapData]
	weakSets            *heapvec.Vector[records.WeakSetData]
	dates               *heapvec.Vector[records.DateData]
	regexps             *heapvec.Vector[records.RegExpData]
	errors              *heapvec.Vector[records.ErrorData]
	proxies             *heapvec.Vector[records.ProxyData]
	promises            *heapvec.Vector[records.PromiseData]
	iterators           *heapvec.Vector[records.IteratorData]
	environmentRecords  *heapvec.Vector[records.EnvironmentRecordData]
	realms              *heapvec.Vector[records.RealmData]
	scripts             *heapvec.Vector[records.ScriptData]
	modules             *heapvec.Vector[records.ModuleData]
	executionContexts   *heapvec.Vector[records.ExecutionContextData]
	referenceRecords    *heapvec.Vector[records.ReferenceRecordData]
	propertyDescriptors *heapvec.Vector[records.PropertyDescriptorData]
	propertyKeyStorages *heapvec.Vector[records.PropertyKeyStorageData]
	shapes              *heapvec.Vector[records.ShapeData]

	collections [kind.Count]trace.Collection

	retire *heapvec.RetireQueue
	Scoped *refs.ScopedTable
	Global *refs.GlobalTable

	// contextStack holds the live kind.ExecutionContext values,
	// innermost last. It is a root set, stored as ordinary Values
	// (rather than raw indices) so the collector's usual visit-based
	// mark and rewrite passes cover it with no special casing.
	contextStack []value.Value

	// liveRealms holds one Value per realm an embedder has created and
	// not yet torn down. Also a root set.
	liveRealms []value.Value

	// interned deduplicates heap strings created via InternString, so
	// repeated property-key lookups for the same text share one record.
	interned map[string]value.Value
}

// New builds an Agent using cfg, or config.Defaults() if cfg is nil.
func New(cfg *config.RealmConfig) *Agent {
	if cfg == nil {
		cfg = config.Defaults()
	}
	a := &Agent{
		cfg:      cfg,
		interned: make(map[string]value.Value),
	}
	if cfg.ConcurrentMarking {
		a.retire = heapvec.NewRetireQueue()
	}

	a.objects = heapvec.New[records.ObjectData](cfg.CapacityFor(kind.Object), a.retire)
	a.arrays = heapvec.New[records.ArrayData](cfg.CapacityFor(kind.Array), a.retire)
	a.functions = heapvec.New[records.FunctionData](cfg.CapacityFor(kind.OrdinaryFunction), a.retire)
	a.builtinFunctions = heapvec.New[records.BuiltinFunctionData](cfg.CapacityFor(kind.BuiltinFunction), a.retire)
	a.boundFunctions = heapvec.New[records.BoundFunctionData](cfg.CapacityFor(kind.BoundFunction), a.retire)
	a.strings = heapvec.New[records.StringData](cfg.CapacityFor(kind.String), a.retire)
	a.symbols = heapvec.New[records.SymbolData](cfg.CapacityFor(kind.Symbol), a.retire)
	a.bigints = heapvec.New[records.BigIntData](cfg.CapacityFor(kind.BigInt), a.retire)
	a.numbers = heapvec.New[records.NumberData](cfg.CapacityFor(kind.Number), a.retire)
	a.arrayBuffers = heapvec.New[records.ArrayBufferData](cfg.CapacityFor(kind.ArrayBuffer), a.retire)
	a.dataViews = heapvec.New[records.DataViewData](cfg.CapacityFor(kind.DataView), a.retire)
	a.typedArrays = heapvec.New[records.TypedArrayData](cfg.CapacityFor(kind.TypedArray), a.retire)
	a.maps = heapvec.New[records.MapData](cfg.CapacityFor(kind.Map), a.retire)
	a.sets = heapvec.New[records.SetData](cfg.CapacityFor(kind.Set), a.retire)
	a.weakMaps = heapvec.New[records.WeakMapData](cfg.CapacityFor(kind.WeakMap), a.retire)
	a.weakSets = heapvec.New[records.WeakSetData](cfg.CapacityFor(kind.WeakSet), a.retire)
	a.dates = heapvec.New[records.DateData](cfg.CapacityFor(kind.Date), a.retire)
	a.regexps = heapvec.New[records.RegExpData](cfg.CapacityFor(kind.RegExp), a.retire)
	a.errors = heapvec.New[records.ErrorData](cfg.CapacityFor(kind.Error), a.retire)
	a.proxies = heapvec.New[records.ProxyData](cfg.CapacityFor(kind.Proxy), a.retire)
	a.promises = heapvec.New[records.PromiseData](cfg.CapacityFor(kind.Promise), a.retire)
	a.iterators = heapvec.New[records.IteratorData](cfg.CapacityFor(kind.Iterator), a.retire)
	a.environmentRecords = heapvec.New[records.EnvironmentRecordData](cfg.CapacityFor(kind.EnvironmentRecord), a.retire)
	a.realms = heapvec.New[records.RealmData](cfg.CapacityFor(kind.Realm), a.retire)
	a.scripts = heapvec.New[records.ScriptData](cfg.CapacityFor(kind.Script), a.retire)
	a.modules = heapvec.New[records.ModuleData](cfg.CapacityFor(kind.Module), a.retire)
	a.executionContexts = heapvec.New[records.ExecutionContextData](cfg.CapacityFor(kind.ExecutionContext), a.retire)
	a.referenceRecords = heapvec.New[records.ReferenceRecordData](cfg.CapacityFor(kind.ReferenceRecord), a.retire)
	a.propertyDescriptors = heapvec.New[records.PropertyDescriptorData](cfg.CapacityFor(kind.PropertyDescriptor), a.retire)
	a.propertyKeyStorages = heapvec.New[records.PropertyKeyStorageData](cfg.CapacityFor(kind.PropertyKeyStorage), a.retire)
	a.shapes = heapvec.New[records.ShapeData](cfg.CapacityFor(kind.Shape), a.retire)

	a.collections[kind.Object] = trace.NewVectorCollection[records.ObjectData, *records.ObjectData](kind.Object, a.objects)
	a.collections[kind.Array] = trace.NewVectorCollection[records.ArrayData, *records.ArrayData](kind.Array, a.arrays)
	a.collections[kind.OrdinaryFunction] = trace.NewVectorCollection[records.FunctionData, *records.FunctionData](kind.OrdinaryFunction, a.functions)
	a.collections[kind.BuiltinFunction] = trace.NewVectorCollection[records.BuiltinFunctionData, *records.BuiltinFunctionData](kind.BuiltinFunction, a.builtinFunctions)
	a.collections[kind.BoundFunction] = trace.NewVectorCollection[records.BoundFunctionData, *records.BoundFunctionData](kind.BoundFunction, a.boundFunctions)
	a.collections[kind.String] = trace.NewVectorCollection[records.StringData, *records.StringData](kind.String, a.strings)
	a.collections[kind.Symbol] = trace.NewVectorCollection[records.SymbolData, *records.SymbolData](kind.Symbol, a.symbols)
	a.collections[kind.BigInt] = trace.NewVectorCollection[records.BigIntData, *records.BigIntData](kind.BigInt, a.bigints)
	a.collections[kind.Number] = trace.NewVectorCollection[records.NumberData, *records.NumberData](kind.Number, a.numbers)
	a.collections[kind.ArrayBuffer] = trace.NewVectorCollection[records.ArrayBufferData, *records.ArrayBufferData](kind.ArrayBuffer, a.arrayBuffers)
	a.collections[kind.DataView] = trace.NewVectorCollection[records.DataViewData, *records.DataViewData](kind.DataView, a.dataViews)
	a.collections[kind.TypedArray] = trace.NewVectorCollection[records.TypedArrayData, *records.TypedArrayData](kind.TypedArray, a.typedArrays)
	a.collections[kind.Map] = trace.NewVectorCollection[records.MapData, *records.MapData](kind.Map, a.maps)
	a.collections[kind.Set] = trace.NewVectorCollection[records.SetData, *records.SetData](kind.Set, a.sets)
	a.collections[kind.WeakMap] = trace.NewVectorCollection[records.WeakMapData, *records.WeakMapData](kind.WeakMap, a.weakMaps)
	a.collections[kind.WeakSet] = trace.NewVectorCollection[records.WeakSetData, *records.WeakSetData](kind.WeakSet, a.weakSets)
	a.collections[kind.Date] = trace.NewVectorCollection[records.DateData, *records.DateData](kind.Date, a.dates)
	a.collections[kind.RegExp] = trace.NewVectorCollection[records.RegExpData, *records.RegExpData](kind.RegExp, a.regexps)
	a.collections[kind.Error] = trace.NewVectorCollection[records.ErrorData, *records.ErrorData](kind.Error, a.errors)
	a.collections[kind.Proxy] = trace.NewVectorCollection[records.ProxyData, *records.ProxyData](kind.Proxy, a.proxies)
	a.collections[kind.Promise] = trace.NewVectorCollection[records.PromiseData, *records.PromiseData](kind.Promise, a.promises)
	a.collections[kind.Iterator] = trace.NewVectorCollection[records.IteratorData, *records.IteratorData](kind.Iterator, a.iterators)
	a.collections[kind.EnvironmentRecord] = trace.NewVectorCollection[records.EnvironmentRecordData, *records.EnvironmentRecordData](kind.EnvironmentRecord, a.environmentRecords)
	a.collections[kind.Realm] = trace.NewVectorCollection[records.RealmData, *records.RealmData](kind.Realm, a.realms)
	a.collections[kind.Script] = trace.NewVectorCollection[records.ScriptData, *records.ScriptData](kind.Script, a.scripts)
	a.collections[kind.Module] = trace.NewVectorCollection[records.ModuleData, *records.ModuleData](kind.Module, a.modules)
	a.collections[kind.ExecutionContext] = trace.NewVectorCollection[records.ExecutionContextData, *records.ExecutionContextData](kind.ExecutionContext, a.executionContexts)
	a.collections[kind.ReferenceRecord] = trace.NewVectorCollection[records.ReferenceRecordData, *records.ReferenceRecordData](kind.ReferenceRecord, a.referenceRecords)
	a.collections[kind.PropertyDescriptor] = trace.NewVectorCollection[records.PropertyDescriptorData, *records.PropertyDescriptorData](kind.PropertyDescriptor, a.propertyDescriptors)
	a.collections[kind.PropertyKeyStorage] = trace.NewVectorCollection[records.PropertyKeyStorageData, *records.PropertyKeyStorageData](kind.PropertyKeyStorage, a.propertyKeyStorages)
	a.collections[kind.Shape] = trace.NewVectorCollection[records.ShapeData, *records.ShapeData](kind.Shape, a.shapes)

	a.Scoped = refs.NewScopedTable(64, a.retire)
	a.Global = refs.NewGlobalTable(64, a.retire)

	return a
}

// Collections returns the dispatch table package gc iterates to mark,
// shift, and rewrite every kind, indexed by kind.Kind.
func (a *Agent) Collections() [kind.Count]trace.Collection {
	return a.collections
}

// Config returns the realm configuration this agent was built with.
func (a *Agent) Config() *config.RealmConfig {
	return a.cfg
}

// Epoch returns the agent's current collection epoch, bumped once per
// completed cycle.
func (a *Agent) Epoch() uint64 {
	return a.epoch
}

// bumpEpoch is called by package gc at the end of a cycle.
func (a *Agent) bumpEpoch() {
	a.epoch++
}

// AllocsSinceCollect returns the number of heap records pushed since
// the last call to ResetAllocCounter.
func (a *Agent) AllocsSinceCollect() uint64 {
	return a.allocs
}

// ResetAllocCounter zeroes the allocation counter; package gc calls
// this after completing a cycle.
func (a *Agent) ResetAllocCounter() {
	a.allocs = 0
}

func (a *Agent) alloc() {
	a.allocs++
}

// NewObject allocates an ordinary object.
func (a *Agent) NewObject(_ MayGC, data records.ObjectData) value.Value {
	a.alloc()
	return value.FromHeap(kind.Object, a.objects.Push(data))
}

// NewArray allocates an array.
func (a *Agent) NewArray(_ MayGC, data records.ArrayData) value.Value {
	a.alloc()
	return value.FromHeap(kind.Array, a.arrays.Push(data))
}

// NewFunction allocates an ordinary (interpreted) function.
func (a *Agent) NewFunction(_ MayGC, data records.FunctionData) value.Value {
	a.alloc()
	return value.FromHeap(kind.OrdinaryFunction, a.functions.Push(data))
}

// NewBuiltinFunction allocates a host-implemented function.
func (a *Agent) NewBuiltinFunction(_ MayGC, data records.BuiltinFunctionData) value.Value {
	a.alloc()
	return value.FromHeap(kind.BuiltinFunction, a.builtinFunctions.Push(data))
}

// NewBoundFunction allocates a Function.prototype.bind result.
func (a *Agent) NewBoundFunction(_ MayGC, data records.BoundFunctionData) value.Value {
	a.alloc()
	return value.FromHeap(kind.BoundFunction, a.boundFunctions.Push(data))
}

// NewHeapString allocates a heap-backed string, for text too long for
// an inline small string. Prefer InternString for property-key text.
func (a *Agent) NewHeapString(_ MayGC, s string) value.Value {
	a.alloc()
	return value.FromHeap(kind.String, a.strings.Push(records.StringData{Bytes: s}))
}

// InternString returns a deduplicated heap string for s, allocating it
// on first use and reusing the same Value thereafter.
func (a *Agent) InternString(may MayGC, s string) value.Value {
	if v, ok := a.interned[s]; ok {
		return v
	}
	v := a.NewHeapString(may, s)
	a.interned[s] = v
	return v
}

// NewSymbol allocates a symbol.
func (a *Agent) NewSymbol(_ MayGC, data records.SymbolData) value.Value {
	a.alloc()
	return value.FromHeap(kind.Symbol, a.symbols.Push(data))
}

// NewHeapBigInt allocates a bigint too large for the inline payload.
func (a *Agent) NewHeapBigInt(_ MayGC, data records.BigIntData) value.Value {
	a.alloc()
	return value.FromHeap(kind.BigInt, a.bigints.Push(data))
}

// NewHeapNumber allocates a boxed float64. Most numbers never reach
// the heap: only ones that escape a NoGC scope unboxed and need a
// stable address do.
func (a *Agent) NewHeapNumber(_ MayGC, data records.NumberData) value.Value {
	a.alloc()
	return value.FromHeap(kind.Number, a.numbers.Push(data))
}

// NewArrayBuffer allocates a raw byte buffer.
func (a *Agent) NewArrayBuffer(_ MayGC, data records.ArrayBufferData) value.Value {
	a.alloc()
	return value.FromHeap(kind.ArrayBuffer, a.arrayBuffers.Push(data))
}

// NewDataView allocates a DataView over an ArrayBuffer.
func (a *Agent) NewDataView(_ MayGC, data records.DataViewData) value.Value {
	a.alloc()
	return value.FromHeap(kind.DataView, a.dataViews.Push(data))
}

// NewTypedArray allocates a typed array view over an ArrayBuffer.
func (a *Agent) NewTypedArray(_ MayGC, data records.TypedArrayData) value.Value {
	a.alloc()
	return value.FromHeap(kind.TypedArray, a.typedArrays.Push(data))
}

// NewMap allocates a Map.
func (a *Agent) NewMap(_ MayGC, data records.MapData) value.Value {
	a.alloc()
	return value.FromHeap(kind.Map, a.maps.Push(data))
}

// NewSet allocates a Set.
func (a *Agent) NewSet(_ MayGC, data records.SetData) value.Value {
	a.alloc()
	return value.FromHeap(kind.Set, a.sets.Push(data))
}

// NewWeakMap allocates a WeakMap.
func (a *Agent) NewWeakMap(_ MayGC, data records.WeakMapData) value.Value {
	a.alloc()
	return value.FromHeap(kind.WeakMap, a.weakMaps.Push(data))
}

// NewWeakSet allocates a WeakSet.
func (a *Agent) NewWeakSet(_ MayGC, data records.WeakSetData) value.Value {
	a.alloc()
	return value.FromHeap(kind.WeakSet, a.weakSets.Push(data))
}

// NewDate allocates a Date.
func (a *Agent) NewDate(_ MayGC, data records.DateData) value.Value {
	a.alloc()
	return value.FromHeap(kind.Date, a.dates.Push(data))
}

// NewRegExp allocates a RegExp.
func (a *Agent) NewRegExp(_ MayGC, data records.RegExpData) value.Value {
	a.alloc()
	return value.FromHeap(kind.RegExp, a.regexps.Push(data))
}

// NewError allocates a native error object.
func (a *Agent) NewError(_ MayGC, data records.ErrorData) value.Value {
	a.alloc()
	return value.FromHeap(kind.Error, a.errors.Push(data))
}

// NewProxy allocates a Proxy.
func (a *Agent) NewProxy(_ MayGC, data records.ProxyData) value.Value {
	a.alloc()
	return value.FromHeap(kind.Proxy, a.proxies.Push(data))
}

// NewPromise allocates a Promise.
func (a *Agent) NewPromise(_ MayGC, data records.PromiseData) value.Value {
	a.alloc()
	return value.FromHeap(kind.Promise, a.promises.Push(data))
}

// NewIterator allocates an iterator record.
func (a *Agent) NewIterator(_ MayGC, data records.IteratorData) value.Value {
	a.alloc()
	return value.FromHeap(kind.Iterator, a.iterators.Push(data))
}

// NewEnvironmentRecord allocates a lexical environment.
func (a *Agent) NewEnvironmentRecord(_ MayGC, data records.EnvironmentRecordData) value.Value {
	a.alloc()
	return value.FromHeap(kind.EnvironmentRecord, a.environmentRecords.Push(data))
}

// NewRealm allocates a realm and adds it to the agent's root set of
// live realms.
func (a *Agent) NewRealm(_ MayGC, data records.RealmData) value.Value {
	a.alloc()
	v := value.FromHeap(kind.Realm, a.realms.Push(data))
	a.liveRealms = append(a.liveRealms, v)
	return v
}

// TeardownRealm removes v's realm from the root set. The realm's
// record becomes ordinary unreachable garbage, collected on the next
// cycle unless something else still references it.
func (a *Agent) TeardownRealm(v value.Value) {
	for i, live := range a.liveRealms {
		if live == v {
			a.liveRealms = append(a.liveRealms[:i], a.liveRealms[i+1:]...)
			return
		}
	}
}

// NewScript allocates a script record.
func (a *Agent) NewScript(_ MayGC, data records.ScriptData) value.Value {
	a.alloc()
	return value.FromHeap(kind.Script, a.scripts.Push(data))
}

// NewModule allocates a module record.
func (a *Agent) NewModule(_ MayGC, data records.ModuleData) value.Value {
	a.alloc()
	return value.FromHeap(kind.Module, a.modules.Push(data))
}

// PushExecutionContext allocates an execution context and pushes it
// onto the agent's context stack, rooting it until PopExecutionContext
// removes it.
func (a *Agent) PushExecutionContext(_ MayGC, data records.ExecutionContextData) value.Value {
	a.alloc()
	v := value.FromHeap(kind.ExecutionContext, a.executionContexts.Push(data))
	a.contextStack = append(a.contextStack, v)
	return v
}

// PopExecutionContext removes the innermost execution context from the
// root set. It panics if the stack is empty.
func (a *Agent) PopExecutionContext() {
	n := len(a.contextStack)
	if n == 0 {
		panic("agent: PopExecutionContext on empty context stack")
	}
	a.contextStack = a.contextStack[:n-1]
}

// NewReferenceRecord allocates a Reference record.
func (a *Agent) NewReferenceRecord(_ MayGC, data records.ReferenceRecordData) value.Value {
	a.alloc()
	return value.FromHeap(kind.ReferenceRecord, a.referenceRecords.Push(data))
}

// NewPropertyDescriptor allocates a heap-backed property descriptor.
func (a *Agent) NewPropertyDescriptor(_ MayGC, data records.PropertyDescriptorData) value.Value {
	a.alloc()
	return value.FromHeap(kind.PropertyDescriptor, a.propertyDescriptors.Push(data))
}

// NewPropertyKeyStorage allocates a heap-backed property key entry.
func (a *Agent) NewPropertyKeyStorage(_ MayGC, data records.PropertyKeyStorageData) value.Value {
	a.alloc()
	return value.FromHeap(kind.PropertyKeyStorage, a.propertyKeyStorages.Push(data))
}

// NewShape allocates a hidden-class shape.
func (a *Agent) NewShape(_ MayGC, data records.ShapeData) value.Value {
	a.alloc()
	return value.FromHeap(kind.Shape, a.shapes.Push(data))
}
