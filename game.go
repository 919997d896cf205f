package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/milk9111/dogrun/character"
	"github.com/milk9111/dogrun/common"
	"github.com/milk9111/dogrun/config"
	"github.com/milk9111/dogrun/ecs"
	"github.com/milk9111/dogrun/ecs/component"
	"github.com/milk9111/dogrun/ecs/entity"
	"github.com/milk9111/dogrun/ecs/render"
	"github.com/milk9111/dogrun/ecs/system"
	"github.com/milk9111/dogrun/prefabs"
)

type Game struct {
	cfg    config.Config
	logger *zap.Logger

	world       *ecs.World
	scheduler   *ecs.Scheduler
	render      *system.RenderSystem
	sheetSelect *system.SheetSelectSystem
	player      *entity.Player

	watcher *prefabs.Watcher

	pauseUI *ebitenui.UI
	paused  bool
	quit    bool

	lastTick time.Time
}

func NewGame(cfg config.Config, logger *zap.Logger) (*Game, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	prefabs.DiskDir = cfg.Game.PrefabDir

	w := ecs.NewWorld()
	if _, err := entity.NewBackground(w, cfg.Game.Background); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	player, err := entity.NewPlayer(w, cfg.Game.Prefab)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	if _, err := entity.NewCamera(w); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	policy, err := loadPolicy(cfg.Game.SelectionPolicy, cfg.Game.Script, logger)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	c, in := player.Character, player.Input
	sheetSelect := system.NewSheetSelectSystem(c, in, policy)

	g := &Game{
		cfg:         cfg,
		logger:      logger,
		world:       w,
		render:      system.NewRenderSystem(),
		sheetSelect: sheetSelect,
		player:      player,
	}
	g.scheduler = ecs.NewScheduler(
		system.NewInputSystem(in, system.EbitenKeys),
		sheetSelect,
		system.NewMovementSystem(c, in),
		system.NewJumpSystem(c, in),
		system.NewFallSystem(c),
		system.NewAnimationClockSystem(c),
		system.NewCharacterSyncSystem(player.Entity, c, nil, logger),
		system.NewCameraSystem(c),
	)
	g.pauseUI = NewPauseUI(g)

	if cfg.Game.HotReload {
		watcher, err := prefabs.NewWatcher(watchDirs(cfg.Game.PrefabDir)...)
		if err != nil {
			// The game still runs without reload.
			logger.Warn("hot reload disabled", zap.String("dir", cfg.Game.PrefabDir), zap.Error(err))
		} else {
			g.watcher = watcher
		}
	}

	logger.Info("game ready",
		zap.String("prefab", cfg.Game.Prefab),
		zap.String("policy", policy.Name()),
		zap.Bool("hot_reload", g.watcher != nil),
	)
	return g, nil
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.setPaused(!g.paused)
	}
	if g.paused {
		g.pauseUI.Update()
		if g.quit {
			return ebiten.Termination
		}
		return nil
	}

	g.applyReloads()

	g.world.Time().Advance(g.tickDelta(time.Now()))
	g.scheduler.Update(g.world)
	return nil
}

// tickDelta returns the wall time since the previous tick, capped at
// max_delta. The first tick after start or resume advances by zero.
func (g *Game) tickDelta(now time.Time) float64 {
	if g.lastTick.IsZero() {
		g.lastTick = now
		return 0
	}
	dt := now.Sub(g.lastTick).Seconds()
	g.lastTick = now
	if dt > g.cfg.Game.MaxDelta {
		dt = g.cfg.Game.MaxDelta
	}
	return dt
}

func (g *Game) setPaused(paused bool) {
	if g.paused == paused {
		return
	}
	g.paused = paused
	if !paused {
		g.lastTick = time.Time{}
	}
	g.logger.Debug("pause toggled", zap.Bool("paused", paused))
}

// cyclePolicy switches to the next selection policy. A policy that fails to
// load is skipped and the current one stays.
func (g *Game) cyclePolicy() string {
	current := g.sheetSelect.Policy().Name()
	next := nextPolicyName(current)
	policy, err := loadPolicy(next, g.cfg.Game.Script, g.logger)
	if err != nil {
		g.logger.Error("switch selection policy", zap.String("policy", next), zap.Error(err))
		return current
	}
	g.sheetSelect.SetPolicy(policy)
	g.logger.Info("selection policy changed", zap.String("from", current), zap.String("to", policy.Name()))
	return policy.Name()
}

func (g *Game) applyReloads() {
	if g.watcher == nil {
		return
	}
	select {
	case err, ok := <-g.watcher.Errors:
		if ok && err != nil {
			g.logger.Warn("prefab watcher", zap.Error(err))
		}
	default:
	}

	for _, path := range g.watcher.Drain() {
		g.applyReload(path)
	}
}

type reloadKind int

const (
	reloadNone reloadKind = iota
	reloadPrefab
	reloadScript
	reloadImage
)

// classifyReload decides what a changed file feeds: the player prefab, the
// selection script or an image under assets/.
func classifyReload(path string, cfg config.GameConfig) reloadKind {
	name := filepath.Base(path)
	switch {
	case prefabs.IsSpecFile(path) && name == filepath.Base(cfg.Prefab):
		return reloadPrefab
	case prefabs.IsScriptFile(path) && name == filepath.Base(cfg.Script):
		return reloadScript
	case prefabs.IsImageFile(path):
		if _, ok := assetKey(path); ok {
			return reloadImage
		}
	}
	return reloadNone
}

func (g *Game) applyReload(path string) {
	switch classifyReload(path, g.cfg.Game) {
	case reloadPrefab:
		if err := g.player.ReloadTuning(g.cfg.Game.Prefab); err != nil {
			g.logger.Error("reload player prefab", zap.String("path", path), zap.Error(err))
			return
		}
		g.logger.Info("player tuning reloaded",
			zap.Float64("move_speed", g.player.Character.Tuning.MoveSpeed),
			zap.Float64("launch_speed", g.player.Character.Tuning.LaunchSpeed),
			zap.Float64("frame_time", g.player.Character.Animation.FrameTime),
		)
	case reloadScript:
		if g.sheetSelect.Policy().Name() != character.PolicyScript {
			return
		}
		policy, err := loadPolicy(character.PolicyScript, g.cfg.Game.Script, g.logger)
		if err != nil {
			g.logger.Error("reload selection script", zap.String("path", path), zap.Error(err))
			return
		}
		g.sheetSelect.SetPolicy(policy)
		g.logger.Info("selection script reloaded", zap.String("path", path))
	case reloadImage:
		g.reloadImage(path)
	}
}

// reloadImage drops the cached copy of an edited image. When it is one of
// the player's strips the sync system loads it again on the next tick.
func (g *Game) reloadImage(path string) {
	key, ok := assetKey(path)
	if !ok {
		return
	}
	render.Forget(key)

	sheets, ok := ecs.Get(g.world, g.player.Entity, component.SpriteSheetsComponent.Kind())
	if !ok {
		return
	}
	for id, p := range sheets.Paths {
		if p != key {
			continue
		}
		if id == sheets.Loaded {
			sheets.Loaded = ""
		}
		g.logger.Info("sprite sheet reloaded", zap.String("sheet", string(id)), zap.String("path", key))
		return
	}
}

const assetsDir = "assets"

// assetKey maps a file under assets/ to the key the image cache uses.
func assetKey(path string) (string, bool) {
	s := filepath.ToSlash(path)
	prefix := assetsDir + "/"
	idx := strings.LastIndex(s, "/"+prefix)
	switch {
	case idx >= 0:
		s = s[idx+len(prefix)+1:]
	case strings.HasPrefix(s, prefix):
		s = s[len(prefix):]
	default:
		return "", false
	}
	return s, s != ""
}

// watchDirs lists the directories hot reload listens on. fsnotify is not
// recursive, so direct subdirectories are added one by one.
func watchDirs(prefabDir string) []string {
	var dirs []string
	for _, root := range []string{prefabDir, assetsDir} {
		if !isDir(root) {
			continue
		}
		dirs = append(dirs, root)
		entries, err := os.ReadDir(root)
		if err != nil {
			continue
		}
		for _, e := range entries {
			if e.IsDir() {
				dirs = append(dirs, filepath.Join(root, e.Name()))
			}
		}
	}
	return dirs
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)

	if g.cfg.Game.Debug {
		c := g.player.Character
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"FPS: %.2f\npos: (%.1f, %.1f)\nmotion: %s v=%.1f\nsheet: %s frame %d/%d\npolicy: %s",
			ebiten.ActualFPS(),
			c.Position.X, c.Position.Y,
			c.Motion.State, c.Motion.Velocity,
			c.Sheet, c.Animation.Frame, c.Animation.FrameLength,
			g.sheetSelect.Policy().Name(),
		))
	}

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// Close releases the reload watcher.
func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	err := g.watcher.Close()
	g.watcher = nil
	if err != nil {
		return fmt.Errorf("game: close watcher: %w", err)
	}
	return nil
}
