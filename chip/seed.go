// Seed data shown on a fresh install, so the catalog is not an empty
// table on first visit. Tag names are in Japanese like the community
// that maintains these records uses them.
package main

func num(v float64) *float64 { return &v }

func defaultTags() []string {
	return []string{"速度重視", "サイズ重視", "汎用性重視", "CPU", "GPU", "64×64以下"}
}

func defaultDevices() []Device {
	return []Device{
		{
			Id: 1, Creator: "水地", Name: "NX RED V1 CPU",
			Scores: map[string]*float64{
				"rcbsp": num(100), "rcbfa": num(500), "rcbmp": num(200),
				"rcbwm": num(150), "rcbrm": num(160), "rcbml": num(120),
				"rcbdv": num(300), "rcbsq": num(600), "rcbsh": num(80),
			},
			Speeds:            Speeds{Multi: 5200000, Single: 4200000, Branch: num(3800000)},
			Microarchitecture: "カスタム64bit",
			Description:       "高性能ゲーミング向けCPU。",
			MinecraftEdition:  "Java",
			Bit:               64, Threads: 16, Cores: 8,
			Volume:         Volume{X: 10, Y: 10, Z: 5},
			CompletionDate: "2023-10-20",
			Tags:           []string{"速度重視", "CPU"},
		},
		{
			Id: 2, Creator: "テックマスター", Name: "Quantum Core X9 CPU",
			Scores: map[string]*float64{
				"rcbsp": num(80), "rcbfa": num(400), "rcbmp": num(150),
				"rcbwm": num(100), "rcbrm": num(110), "rcbml": num(90),
				"rcbdv": num(250), "rcbsq": num(500), "rcbsh": num(60),
			},
			Speeds:            Speeds{Multi: 6000000, Single: 5500000},
			Microarchitecture: "Quantum-RISC",
			Description:       "次世代量子計算技術応用。",
			MinecraftEdition:  "Bedrock",
			Bit:               64, Threads: 32, Cores: 16,
			Volume:         Volume{X: 20, Y: 15, Z: 10},
			CompletionDate: "2024-01-15",
			Tags:           []string{"速度重視", "汎用性重視", "CPU"},
			IsFavorite:     true,
		},
		{
			Id: 3, Creator: "CPUクリエイター", Name: "ThunderBolt Pro CPU",
			Scores: map[string]*float64{
				"rcbsp": num(120), "rcbfa": num(600), "rcbmp": num(250),
				"rcbwm": num(200), "rcbrm": num(210), "rcbml": num(150),
				"rcbdv": num(350), "rcbsq": num(700), "rcbsh": num(100),
			},
			Speeds:            Speeds{Multi: 4800000, Single: 3900000, Branch: num(4200000)},
			Microarchitecture: "ARM-V9カスタム",
			Description:       "省電力と高性能を両立。",
			MinecraftEdition:  "Java",
			Bit:               32, Threads: 24, Cores: 12,
			Volume:         Volume{X: 8, Y: 8, Z: 8},
			CompletionDate: "2023-05-01",
			Tags:           []string{"汎用性重視", "CPU", "64×64以下"},
		},
		{
			Id: 4, Creator: "新人", Name: "MyFirstCPU",
			Scores: map[string]*float64{
				"rcbsp": num(1000), "rcbfa": num(5000), "rcbmp": num(2000),
				"rcbwm": nil, "rcbrm": nil, "rcbml": nil,
				"rcbdv": nil, "rcbsq": nil, "rcbsh": nil,
			},
			Speeds:            Speeds{Multi: 10, Single: 5},
			Microarchitecture: "Simple ALU",
			Description:       "初めて作ったCPUです！",
			MinecraftEdition:  "Java",
			Bit:               8, Threads: 1, Cores: 1,
			Volume:         Volume{X: 5, Y: 5, Z: 5},
			CompletionDate: "2024-03-01",
			Tags:           []string{"サイズ重視", "CPU", "64×64以下"},
		},
		{
			Id: 5, Creator: "GPUマニア", Name: "PixelBlaster 3000 GPU",
			Scores: map[string]*float64{
				"rcbsp": nil, "rcbfa": nil, "rcbmp": nil,
				"rcbwm": nil, "rcbrm": nil, "rcbml": nil,
				"rcbdv": nil, "rcbsq": nil, "rcbsh": nil,
			},
			Speeds:            Speeds{Multi: 150000, Single: 12000},
			Microarchitecture: "Rasterizer Core v2",
			Description:       "超高速描画GPU。ただしCPU機能はなし。",
			MinecraftEdition:  "Java",
			Bit:               128, Threads: 1024, Cores: 256,
			Volume:         Volume{X: 15, Y: 5, Z: 20},
			CompletionDate: "2024-02-20",
			Tags:           []string{"速度重視", "GPU"},
			IsFavorite:     true,
		},
	}
}
