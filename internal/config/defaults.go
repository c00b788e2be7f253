package config

const (
	defaultOutputName       = "gamelist.xml"
	defaultFrontDir         = "Front"
	defaultScreenshotDir    = "Screenshot"
	defaultLogoDir          = "Clear Logo"
	defaultCoversDir        = "images/covers"
	defaultFanartDir        = "images/fanart"
	defaultMarqueesDir      = "images/marquees"
	defaultCoverMaxWidth    = 512
	defaultCoverMaxHeight   = 512
	defaultFanartWidth      = 1280
	defaultFanartHeight     = 720
	defaultMarqueeMaxWidth  = 512
	defaultMarqueeMaxHeight = 256
	defaultJPEGQuality      = 80
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
)

func defaultROMExtensions() []string {
	return []string{
		".chd", ".n64", ".z64", ".v64", ".gdi", ".cdi",
		".iso", ".cue", ".bin", ".img", ".mdf", ".pbp",
	}
}

func defaultExcludedDirs() []string {
	return []string{
		"System Volume Information",
		"$RECYCLE.BIN",
		"images",
		"Config",
	}
}

// Default returns a Config populated with repository defaults. A run with no
// config file behaves identically to a run with this Config.
func Default() Config {
	return Config{
		Scan: Scan{
			ROMExtensions: defaultROMExtensions(),
			ExcludedDirs:  defaultExcludedDirs(),
			OutputName:    defaultOutputName,
			Pause:         true,
		},
		Artwork: Artwork{
			FrontDir:         defaultFrontDir,
			ScreenshotDir:    defaultScreenshotDir,
			LogoDir:          defaultLogoDir,
			CoversDir:        defaultCoversDir,
			FanartDir:        defaultFanartDir,
			MarqueesDir:      defaultMarqueesDir,
			CoverMaxWidth:    defaultCoverMaxWidth,
			CoverMaxHeight:   defaultCoverMaxHeight,
			FanartWidth:      defaultFanartWidth,
			FanartHeight:     defaultFanartHeight,
			MarqueeMaxWidth:  defaultMarqueeMaxWidth,
			MarqueeMaxHeight: defaultMarqueeMaxHeight,
			JPEGQuality:      defaultJPEGQuality,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
