package sinkgen

var definitionsView = newView(Definitions, definitionsPreamble, definitionsBlock, definitionsPostscript)

// RenderDefinitions renders JSSink.cpp: reference counting, collector
// visitation, heap accounting, teardown, receiver dispatch and the host
// entry points of every kind.
func RenderDefinitions(s *Schema) (Artifact, error) {
	return definitionsView.render(s)
}

const definitionsPreamble = `
// AUTO-GENERATED FILE. DO NOT EDIT.
// Generated by sinkgen
//
#include "root.h"
#include "headers.h"
#include "BunClientData.h"

#include "JSSink.h"
#include "AsyncContextFrame.h"

#include "ActiveDOMObject.h"
#include "ExtendedDOMClientIsoSubspaces.h"
#include "ExtendedDOMIsoSubspaces.h"
#include "IDLTypes.h"
#include "JSDOMAttribute.h"
#include "JSDOMBinding.h"
#include "JSDOMConstructor.h"
#include "JSDOMConvertBase.h"
#include "JSDOMConvertInterface.h"
#include "JSDOMConvertStrings.h"
#include "JSDOMExceptionHandling.h"
#include "JSDOMGlobalObject.h"
#include "JSDOMGlobalObjectInlines.h"
#include "JSDOMOperation.h"
#include "JSDOMWrapperCache.h"
#include "ScriptExecutionContext.h"
#include "WebCoreJSClientData.h"
#include <JavaScriptCore/FunctionPrototype.h>
#include <JavaScriptCore/HeapAnalyzer.h>

#include <JavaScriptCore/JSDestructibleObjectHeapCellType.h>
#include <JavaScriptCore/SlotVisitorMacros.h>
#include <JavaScriptCore/SubspaceInlines.h>
#include <wtf/GetPtr.h>
#include <wtf/PointerPreparations.h>
#include <wtf/URL.h>
#include <JavaScriptCore/BuiltinNames.h>

#include "JSBufferEncodingType.h"
#include <JavaScriptCore/JSBase.h>

#include <JavaScriptCore/JSArrayBufferViewInlines.h>

#include "JSReadableStream.h"
#include <JavaScriptCore/Weak.h>
#include <JavaScriptCore/WeakInlines.h>

extern "C" void Bun__onSinkDestroyed(uintptr_t destructor, void* sinkPtr);

namespace WebCore {
using namespace JSC;

// __construct, __finalize, __close, __endWithSink, __updateRef and the
// flush/write/start/end host functions are declared in headers.h.
{{- range .Kinds}}
extern "C" size_t {{.Name}}__memoryCost(void* sinkPtr);
extern "C" JSC::EncodedJSValue {{.Name}}__getInternalFd(WebCore::{{.Names.ClassName}}*);
{{- end}}

{{range .Kinds}}
{{- range .HostFunctions}}
JSC_DECLARE_HOST_FUNCTION({{.}});
{{- end}}
{{- end}}

#include "JSSink.lut.h"

const ClassInfo JSSinkControllerBase::s_info = { "JSSinkController"_s, &Base::s_info, nullptr, nullptr, CREATE_METHOD_TABLE(JSSinkControllerBase) };

JSC_DEFINE_HOST_FUNCTION(functionStartDirectStream, (JSC::JSGlobalObject * lexicalGlobalObject, JSC::CallFrame* callFrame))
{
    auto& vm = lexicalGlobalObject->vm();
    auto scope = DECLARE_THROW_SCOPE(vm);
    Zig::GlobalObject* globalObject = reinterpret_cast<Zig::GlobalObject*>(lexicalGlobalObject);

    JSC::JSValue readableStream = callFrame->argument(0);
    JSC::JSValue onPull = callFrame->argument(1);
    JSC::JSValue onClose = callFrame->argument(2);
    JSC::JSValue asyncContext = callFrame->argument(3);

    if (!readableStream.isObject()) {
        scope.throwException(globalObject, JSC::createTypeError(globalObject, "Expected ReadableStream"_s));
        return JSC::JSValue::encode(JSC::jsUndefined());
    }

    if (!onPull.isObject() || !onPull.isCallable()) {
        onPull = JSC::jsUndefined();
    } else if (!asyncContext.isUndefined()) {
        onPull = AsyncContextFrame::create(globalObject, onPull, asyncContext);
    }

    if (!onClose.isObject() || !onClose.isCallable()) {
        onClose = JSC::jsUndefined();
    } else if (!asyncContext.isUndefined()) {
        onClose = AsyncContextFrame::create(globalObject, onClose, asyncContext);
    }

    auto* controller = JSC::jsDynamicCast<WebCore::JSSinkControllerBase*>(callFrame->thisValue());
    if (!controller) {
        scope.throwException(globalObject, JSC::createTypeError(globalObject, "Unknown direct controller"_s));
        return JSC::JSValue::encode(JSC::jsUndefined());
    }

    switch (controller->sinkID()) {
{{- range .Kinds}}
    case SinkID::{{.Name}}: {
        auto* {{.Name}}Controller = static_cast<WebCore::{{.Names.Controller}}*>(controller);
        if ({{.Name}}Controller->wrapped() == nullptr) {
            scope.throwException(globalObject, JSC::createTypeError(globalObject, "Cannot start stream with closed controller"_s));
            return JSC::JSValue::encode(JSC::jsUndefined());
        }
        {{.Name}}Controller->start(globalObject, readableStream, onPull, onClose);
        break;
    }
{{- end}}
    default:
        scope.throwException(globalObject, JSC::createTypeError(globalObject, "Unknown direct controller"_s));
        return JSC::JSValue::encode(JSC::jsUndefined());
    }

    RELEASE_AND_RETURN(scope, JSC::JSValue::encode(JSC::jsUndefined()));
}
`

const definitionsBlock = `
#pragma mark - {{.Name}}

class {{.Names.Prototype}} final : public JSC::JSNonFinalObject {
public:
    using Base = JSC::JSNonFinalObject;
    static constexpr unsigned StructureFlags = Base::StructureFlags | HasStaticPropertyTable;

    static {{.Names.Prototype}}* create(JSC::VM& vm, JSGlobalObject* globalObject, JSC::Structure* structure)
    {
        {{.Names.Prototype}}* ptr = new (NotNull, JSC::allocateCell<{{.Names.Prototype}}>(vm)) {{.Names.Prototype}}(vm, globalObject, structure);
        ptr->finishCreation(vm, globalObject);
        return ptr;
    }

    DECLARE_INFO;
    template<typename CellType, JSC::SubspaceAccess>
    static JSC::GCClient::IsoSubspace* subspaceFor(JSC::VM& vm)
    {
        STATIC_ASSERT_ISO_SUBSPACE_SHARABLE({{.Names.Prototype}}, Base);
        return &vm.plainObjectSpace();
    }
    static JSC::Structure* createStructure(JSC::VM& vm, JSC::JSGlobalObject* globalObject, JSC::JSValue prototype)
    {
        return JSC::Structure::create(vm, globalObject, prototype, JSC::TypeInfo(JSC::ObjectType, StructureFlags), info());
    }

private:
    {{.Names.Prototype}}(JSC::VM& vm, JSC::JSGlobalObject* globalObject, JSC::Structure* structure)
        : Base(vm, structure)
    {
    }

    void finishCreation(JSC::VM&, JSC::JSGlobalObject*);
};
STATIC_ASSERT_ISO_SUBSPACE_SHARABLE({{.Names.Prototype}}, {{.Names.Prototype}}::Base);

class {{.Names.ControllerPrototype}} final : public JSC::JSNonFinalObject {
public:
    using Base = JSC::JSNonFinalObject;
    static constexpr unsigned StructureFlags = Base::StructureFlags | HasStaticPropertyTable;

    static {{.Names.ControllerPrototype}}* create(JSC::VM& vm, JSGlobalObject* globalObject, JSC::Structure* structure)
    {
        {{.Names.ControllerPrototype}}* ptr = new (NotNull, JSC::allocateCell<{{.Names.ControllerPrototype}}>(vm)) {{.Names.ControllerPrototype}}(vm, globalObject, structure);
        ptr->finishCreation(vm, globalObject);
        return ptr;
    }

    DECLARE_INFO;
    template<typename CellType, JSC::SubspaceAccess>
    static JSC::GCClient::IsoSubspace* subspaceFor(JSC::VM& vm)
    {
        STATIC_ASSERT_ISO_SUBSPACE_SHARABLE({{.Names.ControllerPrototype}}, Base);
        return &vm.plainObjectSpace();
    }
    static JSC::Structure* createStructure(JSC::VM& vm, JSC::JSGlobalObject* globalObject, JSC::JSValue prototype)
    {
        return JSC::Structure::create(vm, globalObject, prototype, JSC::TypeInfo(JSC::ObjectType, StructureFlags), info());
    }

private:
    {{.Names.ControllerPrototype}}(JSC::VM& vm, JSC::JSGlobalObject* globalObject, JSC::Structure* structure)
        : Base(vm, structure)
    {
    }

    void finishCreation(JSC::VM&, JSC::JSGlobalObject*);
};
STATIC_ASSERT_ISO_SUBSPACE_SHARABLE({{.Names.ControllerPrototype}}, {{.Names.ControllerPrototype}}::Base);

const ClassInfo {{.Names.Prototype}}::s_info = { "{{.Name}}"_s, &Base::s_info, &{{.ObjectTable.Name}}, nullptr, CREATE_METHOD_TABLE({{.Names.Prototype}}) };
const ClassInfo {{.Names.ClassName}}::s_info = { "{{.Name}}"_s, &Base::s_info, nullptr, nullptr, CREATE_METHOD_TABLE({{.Names.ClassName}}) };
const ClassInfo {{.Names.Constructor}}::s_info = { "{{.Name}}"_s, &Base::s_info, nullptr, nullptr, CREATE_METHOD_TABLE({{.Names.Constructor}}) };

const ClassInfo {{.Names.ControllerPrototype}}::s_info = { "{{.Names.ControllerName}}"_s, &Base::s_info, &{{.ControllerTable.Name}}, nullptr, CREATE_METHOD_TABLE({{.Names.ControllerPrototype}}) };
const ClassInfo {{.Names.Controller}}::s_info = { "{{.Names.ControllerName}}"_s, &Base::s_info, nullptr, nullptr, CREATE_METHOD_TABLE({{.Names.Controller}}) };

void {{.Names.ClassName}}::ref()
{
    if (!m_sinkPtr)
        return;

    m_refCount++;
    if (m_refCount == 1)
        {{.Name}}__updateRef(m_sinkPtr, true);
}

void {{.Names.ClassName}}::unref()
{
    if (!m_sinkPtr)
        return;

    if (m_refCount == 0)
        return;

    m_refCount--;
    if (m_refCount == 0)
        {{.Name}}__updateRef(m_sinkPtr, false);
}

JSC_DEFINE_HOST_FUNCTION({{.Name}}__ref, (JSC::JSGlobalObject * lexicalGlobalObject, JSC::CallFrame* callFrame))
{
    auto& vm = lexicalGlobalObject->vm();
    auto scope = DECLARE_THROW_SCOPE(vm);
    auto* sink = JSC::jsDynamicCast<WebCore::{{.Names.ClassName}}*>(callFrame->thisValue());
    if (UNLIKELY(!sink)) {
        scope.throwException(lexicalGlobalObject, JSC::createTypeError(lexicalGlobalObject, "Expected {{.Name}}"_s));
        return JSC::JSValue::encode(JSC::jsUndefined());
    }

    sink->ref();
    return JSC::JSValue::encode(JSC::jsUndefined());
}

JSC_DEFINE_HOST_FUNCTION({{.Name}}__unref, (JSC::JSGlobalObject * lexicalGlobalObject, JSC::CallFrame* callFrame))
{
    auto& vm = lexicalGlobalObject->vm();
    auto scope = DECLARE_THROW_SCOPE(vm);
    auto* sink = JSC::jsDynamicCast<WebCore::{{.Names.ClassName}}*>(callFrame->thisValue());
    if (UNLIKELY(!sink)) {
        scope.throwException(lexicalGlobalObject, JSC::createTypeError(lexicalGlobalObject, "Expected {{.Name}}"_s));
        return JSC::JSValue::encode(JSC::jsUndefined());
    }

    sink->unref();
    return JSC::JSValue::encode(JSC::jsUndefined());
}

JSC_DEFINE_CUSTOM_GETTER(function{{.Name}}__getter, (JSC::JSGlobalObject * lexicalGlobalObject, JSC::EncodedJSValue thisValue, JSC::PropertyName))
{
    Zig::GlobalObject* globalObject = reinterpret_cast<Zig::GlobalObject*>(lexicalGlobalObject);

    return JSC::JSValue::encode(globalObject->{{.Name}}());
}

size_t {{.Names.ClassName}}::estimatedSize(JSCell* cell, JSC::VM& vm)
{
    return Base::estimatedSize(cell, vm) + {{.Names.ClassName}}::memoryCost(jsCast<{{.Names.ClassName}}*>(cell)->wrapped());
}

size_t {{.Names.ClassName}}::memoryCost(void* sinkPtr)
{
    if (!sinkPtr)
        return 0;

    return {{.Name}}__memoryCost(sinkPtr);
}

size_t {{.Names.Controller}}::memoryCost(void* sinkPtr)
{
    if (!sinkPtr)
        return 0;

    return {{.Name}}__memoryCost(sinkPtr);
}

size_t {{.Names.Controller}}::estimatedSize(JSCell* cell, JSC::VM& vm)
{
    return Base::estimatedSize(cell, vm) + {{.Names.Controller}}::memoryCost(jsCast<{{.Names.Controller}}*>(cell)->wrapped());
}

JSC_DEFINE_HOST_FUNCTION({{.Names.Controller}}__close, (JSC::JSGlobalObject * lexicalGlobalObject, JSC::CallFrame* callFrame))
{
    auto& vm = lexicalGlobalObject->vm();
    auto scope = DECLARE_THROW_SCOPE(vm);
    Zig::GlobalObject* globalObject = reinterpret_cast<Zig::GlobalObject*>(lexicalGlobalObject);
    WebCore::{{.Names.Controller}}* controller = JSC::jsDynamicCast<WebCore::{{.Names.Controller}}*>(callFrame->thisValue());
    if (!controller) {
        scope.throwException(globalObject, JSC::createTypeError(globalObject, "Expected {{.Names.Controller}}"_s));
        return JSC::JSValue::encode(JSC::jsUndefined());
    }

    void* ptr = controller->wrapped();
    if (ptr == nullptr)
        return JSC::JSValue::encode(JSC::jsUndefined());

    controller->detach();
    {{.Name}}__close(lexicalGlobalObject, ptr);
    return JSC::JSValue::encode(JSC::jsUndefined());
}

JSC_DEFINE_HOST_FUNCTION({{.Names.Controller}}__end, (JSC::JSGlobalObject * lexicalGlobalObject, JSC::CallFrame* callFrame))
{
    auto& vm = lexicalGlobalObject->vm();
    auto scope = DECLARE_THROW_SCOPE(vm);
    Zig::GlobalObject* globalObject = reinterpret_cast<Zig::GlobalObject*>(lexicalGlobalObject);
    WebCore::{{.Names.Controller}}* controller = JSC::jsDynamicCast<WebCore::{{.Names.Controller}}*>(callFrame->thisValue());
    if (!controller) {
        scope.throwException(globalObject, JSC::createTypeError(globalObject, "Expected {{.Names.Controller}}"_s));
        return JSC::JSValue::encode(JSC::jsUndefined());
    }

    void* ptr = controller->wrapped();
    if (ptr == nullptr)
        return JSC::JSValue::encode(JSC::jsUndefined());

    controller->detach();
    return {{.Name}}__endWithSink(ptr, lexicalGlobalObject);
}

// A detached sink has no descriptor; callers see undefined instead of a number.
JSC_DEFINE_HOST_FUNCTION({{.Name}}__getFd, (JSC::JSGlobalObject * lexicalGlobalObject, JSC::CallFrame* callFrame))
{
    auto& vm = lexicalGlobalObject->vm();
    auto scope = DECLARE_THROW_SCOPE(vm);
    Zig::GlobalObject* globalObject = reinterpret_cast<Zig::GlobalObject*>(lexicalGlobalObject);
    WebCore::{{.Names.ClassName}}* sink = JSC::jsDynamicCast<WebCore::{{.Names.ClassName}}*>(callFrame->thisValue());
    if (!sink) {
        scope.throwException(globalObject, JSC::createTypeError(globalObject, "Expected {{.Name}}"_s));
        return JSC::JSValue::encode(JSC::jsUndefined());
    }

    void* ptr = sink->wrapped();
    if (ptr == nullptr)
        return JSC::JSValue::encode(JSC::jsUndefined());

    return {{.Name}}__getInternalFd(sink);
}

JSC_DEFINE_HOST_FUNCTION({{.Name}}__doClose, (JSC::JSGlobalObject * lexicalGlobalObject, JSC::CallFrame* callFrame))
{
    auto& vm = lexicalGlobalObject->vm();
    auto scope = DECLARE_THROW_SCOPE(vm);
    Zig::GlobalObject* globalObject = reinterpret_cast<Zig::GlobalObject*>(lexicalGlobalObject);
    WebCore::{{.Names.ClassName}}* sink = JSC::jsDynamicCast<WebCore::{{.Names.ClassName}}*>(callFrame->thisValue());
    if (!sink) {
        scope.throwException(globalObject, JSC::createTypeError(globalObject, "Expected {{.Name}}"_s));
        return JSC::JSValue::encode(JSC::jsUndefined());
    }

    void* ptr = sink->wrapped();
    if (ptr == nullptr)
        return JSC::JSValue::encode(JSC::jsUndefined());

    sink->detach();
    {{.Name}}__close(lexicalGlobalObject, ptr);
    return JSC::JSValue::encode(JSC::jsUndefined());
}

{{.Names.ClassName}}::~{{.Names.ClassName}}()
{
    if (m_onDestroy) {
        auto destroy = m_onDestroy;
        m_onDestroy = 0;
        Bun__onSinkDestroyed(destroy, m_sinkPtr);
    }

    if (m_sinkPtr)
        {{.Name}}__finalize(m_sinkPtr);
}

{{.Names.Controller}}::~{{.Names.Controller}}()
{
    if (m_onDestroy) {
        auto destroy = m_onDestroy;
        m_onDestroy = 0;
        Bun__onSinkDestroyed(destroy, m_sinkPtr);
    }

    if (m_sinkPtr)
        {{.Name}}__finalize(m_sinkPtr);
}

JSObject* {{.Names.ClassName}}::createPrototype(VM& vm, JSDOMGlobalObject& globalObject)
{
    return {{.Names.Prototype}}::create(vm, &globalObject, {{.Names.Prototype}}::createStructure(vm, &globalObject, globalObject.objectPrototype()));
}

JSObject* {{.Names.Controller}}::createPrototype(VM& vm, JSDOMGlobalObject& globalObject)
{
    return {{.Names.ControllerPrototype}}::create(vm, &globalObject, {{.Names.ControllerPrototype}}::createStructure(vm, &globalObject, globalObject.objectPrototype()));
}

// The close callback slot is cleared before it is invoked so a re-entrant
// detach from inside the callback cannot fire it a second time.
void {{.Names.Controller}}::detach()
{
    if (m_onDestroy) {
        auto destroy = m_onDestroy;
        m_onDestroy = 0;
        Bun__onSinkDestroyed(destroy, m_sinkPtr);
    }

    m_sinkPtr = nullptr;
    m_onPull.clear();

    auto readableStream = m_weakReadableStream.get();
    JSC::JSValue onClose = m_onClose.get();
    m_onClose.clear();
    m_weakReadableStream.clear();

    if (readableStream && onClose) {
        auto callData = JSC::getCallData(onClose);
        if (callData.type != JSC::CallData::Type::None) {
            JSC::JSGlobalObject* globalObject = this->globalObject();
            JSC::MarkedArgumentBuffer arguments;
            arguments.append(readableStream);
            arguments.append(jsUndefined());
            call(globalObject, onClose, callData, JSC::jsUndefined(), arguments);
        }
    }
}

{{.Names.Constructor}}* {{.Names.Constructor}}::create(JSC::VM& vm, JSC::JSGlobalObject* globalObject, JSC::Structure* structure, JSObject* prototype)
{
    {{.Names.Constructor}}* ptr = new (NotNull, JSC::allocateCell<{{.Names.Constructor}}>(vm)) {{.Names.Constructor}}(vm, structure, {{.Name}}__construct);
    ptr->finishCreation(vm, globalObject, prototype);
    return ptr;
}

{{.Names.ClassName}}* {{.Names.ClassName}}::create(JSC::VM& vm, JSC::JSGlobalObject* globalObject, JSC::Structure* structure, void* sinkPtr, uintptr_t onDestroy)
{
    {{.Names.ClassName}}* ptr = new (NotNull, JSC::allocateCell<{{.Names.ClassName}}>(vm)) {{.Names.ClassName}}(vm, structure, sinkPtr, onDestroy);
    ptr->finishCreation(vm);
    return ptr;
}

{{.Names.Controller}}* {{.Names.Controller}}::create(JSC::VM& vm, JSC::JSGlobalObject* globalObject, JSC::Structure* structure, void* sinkPtr, uintptr_t onDestroy)
{
    {{.Names.Controller}}* ptr = new (NotNull, JSC::allocateCell<{{.Names.Controller}}>(vm)) {{.Names.Controller}}(vm, structure, sinkPtr, onDestroy);
    ptr->finishCreation(vm);
    return ptr;
}

void {{.Names.Constructor}}::finishCreation(VM& vm, JSC::JSGlobalObject* globalObject, JSObject* prototype)
{
    Base::finishCreation(vm);
    ASSERT(inherits(info()));
    initializeProperties(vm, globalObject, prototype);
}

JSC::EncodedJSValue JSC_HOST_CALL_ATTRIBUTES {{.Names.Constructor}}::construct(JSC::JSGlobalObject* globalObject, JSC::CallFrame* callFrame)
{
    return {{.Name}}__construct(globalObject, callFrame);
}

void {{.Names.Constructor}}::initializeProperties(VM& vm, JSC::JSGlobalObject* globalObject, JSObject* prototype)
{
    putDirect(vm, vm.propertyNames->length, jsNumber(0), JSC::PropertyAttribute::ReadOnly | JSC::PropertyAttribute::DontEnum);
    JSString* nameString = jsNontrivialString(vm, "{{.Name}}"_s);
    m_originalName.set(vm, this, nameString);
    putDirect(vm, vm.propertyNames->name, nameString, JSC::PropertyAttribute::ReadOnly | JSC::PropertyAttribute::DontEnum);
}

void {{.Names.Prototype}}::finishCreation(JSC::VM& vm, JSC::JSGlobalObject* globalObject)
{
    Base::finishCreation(vm);
    reifyStaticProperties(vm, {{.Names.ClassName}}::info(), {{.ObjectTable.Name}}Values, *this);
    putDirect(vm, JSC::Identifier::fromString(vm, "sinkId"_s), JSC::jsNumber({{.Names.ClassName}}::Sink), JSC::PropertyAttribute::ReadOnly | JSC::PropertyAttribute::DontEnum);
    JSC_TO_STRING_TAG_WITHOUT_TRANSITION();
}

void {{.Names.ControllerPrototype}}::finishCreation(JSC::VM& vm, JSC::JSGlobalObject* globalObject)
{
    Base::finishCreation(vm);
    reifyStaticProperties(vm, {{.Names.Controller}}::info(), {{.ControllerTable.Name}}Values, *this);
    putDirect(vm, JSC::Identifier::fromString(vm, "sinkId"_s), JSC::jsNumber({{.Names.Controller}}::Sink), JSC::PropertyAttribute::ReadOnly | JSC::PropertyAttribute::DontEnum);
    JSC_TO_STRING_TAG_WITHOUT_TRANSITION();
}

void {{.Names.ClassName}}::finishCreation(VM& vm)
{
    Base::finishCreation(vm);
    ASSERT(inherits(info()));
}

void {{.Names.Controller}}::finishCreation(VM& vm)
{
    Base::finishCreation(vm);
    ASSERT(inherits(info()));
}

void {{.Names.ClassName}}::analyzeHeap(JSCell* cell, HeapAnalyzer& analyzer)
{
    Base::analyzeHeap(cell, analyzer);
    auto* thisObject = jsCast<{{.Names.ClassName}}*>(cell);
    if (void* wrapped = thisObject->wrapped())
        analyzer.setWrappedObjectForCell(cell, wrapped);
}

void {{.Names.Controller}}::analyzeHeap(JSCell* cell, HeapAnalyzer& analyzer)
{
    Base::analyzeHeap(cell, analyzer);
    auto* thisObject = jsCast<{{.Names.Controller}}*>(cell);
    if (void* wrapped = thisObject->wrapped())
        analyzer.setWrappedObjectForCell(cell, wrapped);

    auto& vm = cell->vm();

    if (thisObject->m_onPull) {
        JSValue onPull = thisObject->m_onPull.get();
        if (onPull.isCell()) {
            const Identifier& id = Identifier::fromString(vm, "onPull"_s);
            analyzer.analyzePropertyNameEdge(cell, onPull.asCell(), id.impl());
        }
    }

    if (thisObject->m_onClose) {
        JSValue onClose = thisObject->m_onClose.get();
        if (onClose.isCell()) {
            const Identifier& id = Identifier::fromString(vm, "onClose"_s);
            analyzer.analyzePropertyNameEdge(cell, onClose.asCell(), id.impl());
        }
    }
}

template<typename Visitor>
void {{.Names.Controller}}::visitChildrenImpl(JSCell* cell, Visitor& visitor)
{
    {{.Names.Controller}}* thisObject = jsCast<{{.Names.Controller}}*>(cell);
    ASSERT_GC_OBJECT_INHERITS(thisObject, info());
    Base::visitChildren(thisObject, visitor);

    // Hidden so heap snapshots do not count the callbacks twice.
    visitor.appendHidden(thisObject->m_onPull);
    visitor.appendHidden(thisObject->m_onClose);

    void* ptr = thisObject->m_sinkPtr;
    if (ptr)
        visitor.addOpaqueRoot(ptr);
}

DEFINE_VISIT_CHILDREN({{.Names.Controller}});

template<typename Visitor>
void {{.Names.ClassName}}::visitChildrenImpl(JSCell* cell, Visitor& visitor)
{
    {{.Names.ClassName}}* thisObject = jsCast<{{.Names.ClassName}}*>(cell);
    ASSERT_GC_OBJECT_INHERITS(thisObject, info());
    Base::visitChildren(thisObject, visitor);

    void* ptr = thisObject->m_sinkPtr;
    if (ptr)
        visitor.addOpaqueRoot(ptr);
}

DEFINE_VISIT_CHILDREN({{.Names.ClassName}});

void {{.Names.Controller}}::start(JSC::JSGlobalObject* globalObject, JSC::JSValue readableStream, JSC::JSValue onPull, JSC::JSValue onClose)
{
    this->m_weakReadableStream = JSC::Weak<JSC::JSObject>(readableStream.getObject());
    this->m_onPull.set(globalObject->vm(), this, onPull);
    this->m_onClose.set(globalObject->vm(), this, onClose);
}

void {{.Names.ClassName}}::destroy(JSCell* cell)
{
    static_cast<{{.Names.ClassName}}*>(cell)->{{.Names.ClassName}}::~{{.Names.ClassName}}();
}

void {{.Names.Controller}}::destroy(JSCell* cell)
{
    static_cast<{{.Names.Controller}}*>(cell)->{{.Names.Controller}}::~{{.Names.Controller}}();
}

extern "C" void {{.Name}}__setDestroyCallback(EncodedJSValue encodedValue, uintptr_t callback)
{
    JSValue value = JSValue::decode(encodedValue);
    if (auto* sink = JSC::jsDynamicCast<WebCore::{{.Names.ClassName}}*>(value)) {
        sink->m_onDestroy = callback;
    } else if (auto* controller = JSC::jsDynamicCast<WebCore::{{.Names.Controller}}*>(value)) {
        controller->m_onDestroy = callback;
    }
}

extern "C" JSC__JSValue {{.Name}}__createObject(JSC__JSGlobalObject* arg0, void* sinkPtr, uintptr_t destructor)
{
    auto& vm = arg0->vm();
    Zig::GlobalObject* globalObject = reinterpret_cast<Zig::GlobalObject*>(arg0);
    JSC::Structure* structure = globalObject->{{.Name}}Structure();
    return JSC::JSValue::encode(WebCore::{{.Names.ClassName}}::create(vm, globalObject, structure, sinkPtr, destructor));
}

extern "C" void* {{.Name}}__fromJS(JSC__JSGlobalObject* arg0, JSC__JSValue JSValue1)
{
    if (auto* sink = JSC::jsDynamicCast<WebCore::{{.Names.ClassName}}*>(JSC::JSValue::decode(JSValue1)))
        return sink->wrapped();

    if (auto* controller = JSC::jsDynamicCast<WebCore::{{.Names.Controller}}*>(JSC::JSValue::decode(JSValue1)))
        return controller->wrapped();

    return nullptr;
}

extern "C" void {{.Name}}__detachPtr(JSC__JSValue JSValue0)
{
    if (auto* sink = JSC::jsDynamicCast<WebCore::{{.Names.ClassName}}*>(JSC::JSValue::decode(JSValue0))) {
        sink->detach();
        return;
    }

    if (auto* controller = JSC::jsDynamicCast<WebCore::{{.Names.Controller}}*>(JSC::JSValue::decode(JSValue0))) {
        controller->detach();
        return;
    }
}

extern "C" JSC__JSValue {{.Name}}__assignToStream(JSC__JSGlobalObject* arg0, JSC__JSValue stream, void* sinkPtr, void** controllerValue)
{
    auto& vm = arg0->vm();
    Zig::GlobalObject* globalObject = reinterpret_cast<Zig::GlobalObject*>(arg0);

    JSC::Structure* structure = WebCore::getDOMStructure<WebCore::{{.Names.Controller}}>(vm, *globalObject);
    WebCore::{{.Names.Controller}}* controller = WebCore::{{.Names.Controller}}::create(vm, globalObject, structure, sinkPtr, 0);
    *controllerValue = reinterpret_cast<void*>(JSC::JSValue::encode(controller));
    return globalObject->assignToStream(JSC::JSValue::decode(stream), controller);
}

extern "C" void {{.Name}}__onReady(JSC__JSValue controllerValue, JSC__JSValue amt, JSC__JSValue offset)
{
    WebCore::{{.Names.Controller}}* controller = JSC::jsCast<WebCore::{{.Names.Controller}}*>(JSC::JSValue::decode(controllerValue).getObject());

    JSC::JSValue function = controller->m_onPull.get();
    if (!function)
        return;
    JSC::JSGlobalObject* globalObject = controller->globalObject();
    auto scope = DECLARE_THROW_SCOPE(globalObject->vm());
    JSC::MarkedArgumentBuffer arguments;
    arguments.append(controller);
    arguments.append(JSC::JSValue::decode(amt));
    arguments.append(JSC::JSValue::decode(offset));

    AsyncContextFrame::call(globalObject, function, JSC::jsUndefined(), arguments);
    RELEASE_AND_RETURN(scope, void());
}

extern "C" void {{.Name}}__onStart(JSC__JSValue controllerValue)
{
}

extern "C" void {{.Name}}__onClose(JSC__JSValue controllerValue, JSC__JSValue reason)
{
    WebCore::{{.Names.Controller}}* controller = JSC::jsCast<WebCore::{{.Names.Controller}}*>(JSC::JSValue::decode(controllerValue).getObject());

    JSC::JSValue function = controller->m_onClose.get();
    if (!function)
        return;
    // Only call close once.
    controller->m_onClose.clear();
    JSC::JSGlobalObject* globalObject = controller->globalObject();
    auto scope = DECLARE_THROW_SCOPE(globalObject->vm());

    JSC::MarkedArgumentBuffer arguments;
    auto readableStream = controller->m_weakReadableStream.get();
    arguments.append(readableStream ? readableStream : JSC::jsUndefined());
    arguments.append(JSC::JSValue::decode(reason));
    AsyncContextFrame::call(globalObject, function, JSC::jsUndefined(), arguments);
    RELEASE_AND_RETURN(scope, void());
}
`

const definitionsPostscript = `
JSObject* createJSSinkPrototype(JSC::VM& vm, JSC::JSGlobalObject* globalObject, SinkID sinkID)
{
    switch (sinkID) {
{{- range .Kinds}}
    case SinkID::{{.Name}}:
        return {{.Names.Prototype}}::create(vm, globalObject, {{.Names.Prototype}}::createStructure(vm, globalObject, globalObject->objectPrototype()));
{{- end}}
    default:
        RELEASE_ASSERT_NOT_REACHED();
    }
}

JSObject* createJSSinkControllerPrototype(JSC::VM& vm, JSC::JSGlobalObject* globalObject, SinkID sinkID)
{
    switch (sinkID) {
{{- range .Kinds}}
    case SinkID::{{.Name}}:
        return {{.Names.ControllerPrototype}}::create(vm, globalObject, {{.Names.ControllerPrototype}}::createStructure(vm, globalObject, globalObject->objectPrototype()));
{{- end}}
    default:
        RELEASE_ASSERT_NOT_REACHED();
    }
}

Structure* createJSSinkControllerStructure(JSC::VM& vm, JSC::JSGlobalObject* globalObject, SinkID sinkID)
{
    switch (sinkID) {
{{- range .Kinds}}
    case SinkID::{{.Name}}: {
        auto* prototype = createJSSinkControllerPrototype(vm, globalObject, sinkID);
        return {{.Names.Controller}}::createStructure(vm, globalObject, prototype);
    }
{{- end}}
    default:
        RELEASE_ASSERT_NOT_REACHED();
    }
}

} // namespace WebCore
`
