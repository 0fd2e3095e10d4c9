package activity

import (
	"fmt"
	"strconv"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// LuaDispatcher delegates launches to a Lua function:
//
//	function launch(req) -- req.region, req.activity, req.label, req.world, req.seed
//	  return true        -- or false / "reason" to reject
//	end
//
// req.seed is the world seed as a decimal string.
// Single-goroutine access only.
type LuaDispatcher struct {
	vm  *lua.LState
	log *zap.Logger
}

// NewLuaDispatcher loads the script at path.
func NewLuaDispatcher(path string, log *zap.Logger) (*LuaDispatcher, error) {
	d := newLuaDispatcher(log)
	if err := d.vm.DoFile(path); err != nil {
		d.vm.Close()
		return nil, fmt.Errorf("load activity script %s: %w", path, err)
	}
	return d, d.checkEntryPoint()
}

// NewLuaDispatcherString loads a script from source.
func NewLuaDispatcherString(src string, log *zap.Logger) (*LuaDispatcher, error) {
	d := newLuaDispatcher(log)
	if err := d.vm.DoString(src); err != nil {
		d.vm.Close()
		return nil, fmt.Errorf("load activity script: %w", err)
	}
	return d, d.checkEntryPoint()
}

func newLuaDispatcher(log *zap.Logger) *LuaDispatcher {
	if log == nil {
		log = zap.NewNop()
	}
	vm := lua.NewState(lua.Options{SkipOpenLibs: false})
	vm.SetGlobal("API_VERSION", lua.LNumber(1))
	d := &LuaDispatcher{vm: vm, log: log}
	vm.SetGlobal("log", vm.NewFunction(d.luaLog))
	return d
}

func (d *LuaDispatcher) checkEntryPoint() error {
	if d.vm.GetGlobal("launch").Type() != lua.LTFunction {
		d.vm.Close()
		return fmt.Errorf("activity script defines no launch function")
	}
	return nil
}

// luaLog exposes log(msg) to scripts.
func (d *LuaDispatcher) luaLog(L *lua.LState) int {
	d.log.Info("lua", zap.String("msg", L.CheckString(1)))
	return 0
}

// Launch calls the script's launch function. A false or nil result rejects
// the request with ErrRejected; a string result rejects it with that reason.
func (d *LuaDispatcher) Launch(req Request) error {
	t := d.vm.NewTable()
	t.RawSetString("world", lua.LString(req.WorldID))
	t.RawSetString("region", lua.LString(req.Region))
	t.RawSetString("label", lua.LString(req.Label))
	t.RawSetString("activity", lua.LString(req.ActivityID))
	// Lua numbers are float64, which cannot hold every int64 seed.
	t.RawSetString("seed", lua.LString(strconv.FormatInt(req.Seed, 10)))

	if err := d.vm.CallByParam(lua.P{
		Fn:      d.vm.GetGlobal("launch"),
		NRet:    1,
		Protect: true,
	}, t); err != nil {
		d.log.Error("lua launch error", zap.String("activity", req.ActivityID), zap.Error(err))
		return fmt.Errorf("launch %s: %w", req.ActivityID, err)
	}

	result := d.vm.Get(-1)
	d.vm.Pop(1)

	switch v := result.(type) {
	case lua.LBool:
		if v {
			return nil
		}
	case lua.LString:
		return fmt.Errorf("%w: %s: %s", ErrRejected, req.ActivityID, string(v))
	}
	return fmt.Errorf("%w: %s", ErrRejected, req.ActivityID)
}

// Close releases the Lua VM
func (d *LuaDispatcher) Close() {
	d.vm.Close()
}
