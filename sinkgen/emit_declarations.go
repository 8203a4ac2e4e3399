package sinkgen

var declarationsView = newView(Declarations, declarationsPreamble, declarationsBlock, declarationsPostscript)

// RenderDeclarations renders JSSink.h: the class family of every kind plus
// the shared free-function declarations.
func RenderDeclarations(s *Schema) (Artifact, error) {
	return declarationsView.render(s)
}

const declarationsPreamble = `
// AUTO-GENERATED FILE. DO NOT EDIT.
// Generated by sinkgen
//
#pragma once

#include "root.h"

#include "JSDOMWrapper.h"
#include <wtf/NeverDestroyed.h>

#include "Sink.h"

extern "C" bool JSSink_isSink(JSC::JSGlobalObject*, JSC::EncodedJSValue);

namespace WebCore {
using namespace JSC;

JSC_DECLARE_HOST_FUNCTION(functionStartDirectStream);

// Shared base of every readable controller. The kind tag lets a receiver be
// matched with one dynamic cast and a switch.
class JSSinkControllerBase : public JSC::JSDestructibleObject {
public:
    using Base = JSC::JSDestructibleObject;
    DECLARE_EXPORT_INFO;

    SinkID sinkID() const { return m_sinkID; }

protected:
    JSSinkControllerBase(JSC::VM& vm, JSC::Structure* structure, SinkID sinkID)
        : Base(vm, structure)
        , m_sinkID(sinkID)
    {
    }

private:
    const SinkID m_sinkID;
};
`

const declarationsBlock = `
#pragma mark - {{.Name}}

class {{.Names.Constructor}} final : public JSC::InternalFunction {
public:
    using Base = JSC::InternalFunction;
    static {{.Names.Constructor}}* create(JSC::VM& vm, JSC::JSGlobalObject* globalObject, JSC::Structure* structure, JSC::JSObject* prototype);
    static constexpr SinkID Sink = SinkID::{{.Name}};

    static constexpr unsigned StructureFlags = Base::StructureFlags;
    static constexpr bool needsDestruction = false;

    DECLARE_EXPORT_INFO;
    template<typename, JSC::SubspaceAccess mode> static JSC::GCClient::IsoSubspace* subspaceFor(JSC::VM& vm)
    {
        if constexpr (mode == JSC::SubspaceAccess::Concurrently)
            return nullptr;
        return WebCore::subspaceForImpl<{{.Names.Constructor}}, WebCore::UseCustomHeapCellType::No>(
            vm,
            [](auto& spaces) { return spaces.m_clientSubspaceFor{{.Names.Constructor}}.get(); },
            [](auto& spaces, auto&& space) { spaces.m_clientSubspaceFor{{.Names.Constructor}} = std::forward<decltype(space)>(space); },
            [](auto& spaces) { return spaces.m_subspaceFor{{.Names.Constructor}}.get(); },
            [](auto& spaces, auto&& space) { spaces.m_subspaceFor{{.Names.Constructor}} = std::forward<decltype(space)>(space); });
    }

    static JSC::Structure* createStructure(JSC::VM& vm, JSC::JSGlobalObject* globalObject, JSC::JSValue prototype)
    {
        return JSC::Structure::create(vm, globalObject, prototype, JSC::TypeInfo(JSC::InternalFunctionType, StructureFlags), info());
    }
    void initializeProperties(JSC::VM& vm, JSC::JSGlobalObject* globalObject, JSC::JSObject* prototype);

    static JSC::EncodedJSValue JSC_HOST_CALL_ATTRIBUTES construct(JSC::JSGlobalObject*, JSC::CallFrame*);

private:
    {{.Names.Constructor}}(JSC::VM& vm, JSC::Structure* structure, JSC::NativeFunction nativeFunction)
        : Base(vm, structure, nativeFunction, nativeFunction)
    {
    }

    void finishCreation(JSC::VM&, JSC::JSGlobalObject* globalObject, JSC::JSObject* prototype);
};

class {{.Names.ClassName}} final : public JSC::JSDestructibleObject {
public:
    using Base = JSC::JSDestructibleObject;
    static {{.Names.ClassName}}* create(JSC::VM& vm, JSC::JSGlobalObject* globalObject, JSC::Structure* structure, void* sinkPtr, uintptr_t onDestroy = 0);
    static constexpr SinkID Sink = SinkID::{{.Name}};

    DECLARE_EXPORT_INFO;
    template<typename, JSC::SubspaceAccess mode> static JSC::GCClient::IsoSubspace* subspaceFor(JSC::VM& vm)
    {
        if constexpr (mode == JSC::SubspaceAccess::Concurrently)
            return nullptr;
        return WebCore::subspaceForImpl<{{.Names.ClassName}}, WebCore::UseCustomHeapCellType::No>(
            vm,
            [](auto& spaces) { return spaces.m_clientSubspaceFor{{.Names.ClassName}}.get(); },
            [](auto& spaces, auto&& space) { spaces.m_clientSubspaceFor{{.Names.ClassName}} = std::forward<decltype(space)>(space); },
            [](auto& spaces) { return spaces.m_subspaceFor{{.Names.ClassName}}.get(); },
            [](auto& spaces, auto&& space) { spaces.m_subspaceFor{{.Names.ClassName}} = std::forward<decltype(space)>(space); });
    }

    static void destroy(JSC::JSCell*);
    static JSC::Structure* createStructure(JSC::VM& vm, JSC::JSGlobalObject* globalObject, JSC::JSValue prototype)
    {
        return JSC::Structure::create(vm, globalObject, prototype, JSC::TypeInfo(JSC::ObjectType, StructureFlags), info());
    }

    static JSObject* createPrototype(VM& vm, JSDOMGlobalObject& globalObject);

    ~{{.Names.ClassName}}();

    void* wrapped() const { return m_sinkPtr; }
    DECLARE_VISIT_CHILDREN;

    // Idempotent: only the first call has an effect.
    void detach()
    {
        m_sinkPtr = nullptr;
    }

    static void analyzeHeap(JSCell*, JSC::HeapAnalyzer&);
    static size_t estimatedSize(JSCell* cell, JSC::VM& vm);
    static size_t memoryCost(void* sinkPtr);

    void ref();
    void unref();

    void* m_sinkPtr;
    int m_refCount { 1 };

    uintptr_t m_onDestroy { 0 };

    {{.Names.ClassName}}(JSC::VM& vm, JSC::Structure* structure, void* sinkPtr, uintptr_t onDestroy)
        : Base(vm, structure)
    {
        m_sinkPtr = sinkPtr;
        m_onDestroy = onDestroy;
    }

    void finishCreation(JSC::VM&);
};

class {{.Names.Controller}} final : public JSSinkControllerBase {
public:
    using Base = JSSinkControllerBase;
    static {{.Names.Controller}}* create(JSC::VM& vm, JSC::JSGlobalObject* globalObject, JSC::Structure* structure, void* sinkPtr, uintptr_t onDestroy);
    static constexpr SinkID Sink = SinkID::{{.Name}};

    DECLARE_EXPORT_INFO;
    template<typename, JSC::SubspaceAccess mode> static JSC::GCClient::IsoSubspace* subspaceFor(JSC::VM& vm)
    {
        if constexpr (mode == JSC::SubspaceAccess::Concurrently)
            return nullptr;
        return WebCore::subspaceForImpl<{{.Names.Controller}}, WebCore::UseCustomHeapCellType::No>(
            vm,
            [](auto& spaces) { return spaces.m_clientSubspaceFor{{.Names.Controller}}.get(); },
            [](auto& spaces, auto&& space) { spaces.m_clientSubspaceFor{{.Names.Controller}} = std::forward<decltype(space)>(space); },
            [](auto& spaces) { return spaces.m_subspaceFor{{.Names.Controller}}.get(); },
            [](auto& spaces, auto&& space) { spaces.m_subspaceFor{{.Names.Controller}} = std::forward<decltype(space)>(space); });
    }

    static void destroy(JSC::JSCell*);
    static JSC::Structure* createStructure(JSC::VM& vm, JSC::JSGlobalObject* globalObject, JSC::JSValue prototype)
    {
        return JSC::Structure::create(vm, globalObject, prototype, JSC::TypeInfo(JSC::ObjectType, StructureFlags), info());
    }
    static JSObject* createPrototype(VM& vm, JSDOMGlobalObject& globalObject);

    ~{{.Names.Controller}}();

    void* wrapped() const { return m_sinkPtr; }
    void detach();

    void start(JSC::JSGlobalObject* globalObject, JSC::JSValue readableStream, JSC::JSValue onPull, JSC::JSValue onClose);
    DECLARE_VISIT_CHILDREN;

    static void analyzeHeap(JSCell*, JSC::HeapAnalyzer&);
    static size_t estimatedSize(JSCell* cell, JSC::VM& vm);
    static size_t memoryCost(void* sinkPtr);

    void* m_sinkPtr;
    mutable WriteBarrier<JSC::Unknown> m_onPull;
    mutable WriteBarrier<JSC::Unknown> m_onClose;
    mutable JSC::Weak<JSObject> m_weakReadableStream;

    uintptr_t m_onDestroy { 0 };

    {{.Names.Controller}}(JSC::VM& vm, JSC::Structure* structure, void* sinkPtr, uintptr_t onDestroy)
        : Base(vm, structure, Sink)
    {
        m_sinkPtr = sinkPtr;
        m_onDestroy = onDestroy;
    }

    void finishCreation(JSC::VM&);
};

JSC_DECLARE_CUSTOM_GETTER(function{{.Name}}__getter);
`

const declarationsPostscript = `
JSObject* createJSSinkPrototype(JSC::VM& vm, JSC::JSGlobalObject* globalObject, WebCore::SinkID sinkID);
JSObject* createJSSinkControllerPrototype(JSC::VM& vm, JSC::JSGlobalObject* globalObject, WebCore::SinkID sinkID);
Structure* createJSSinkControllerStructure(JSC::VM& vm, JSC::JSGlobalObject* globalObject, WebCore::SinkID sinkID);
} // namespace WebCore
`
