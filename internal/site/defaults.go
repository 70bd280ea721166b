package site

// DefaultSettings returns the built-in site configuration.
func DefaultSettings() Settings {
	return Settings{
		SiteTitle:       "거대돼지고양이의 방",
		MarqueeText:     "★★★ Welcome to VERYBIGPIGCAT's Personal Archive! 200X Digital Space ★★★",
		SystemMessage:   "제 개인 홈페이지를 방문해주셔서 감사합니다!\nhttp://verybigpigcat.woobi.co.kr/ 의 새로운 보금자리입니다.\n아직 공사 중인 곳이 많지만 천천히 둘러보세요☆",
		ProfileName:     "거대돼지고양이 (Very Big Pig Cat)",
		ProfileStatus:   "Digital Wanderer",
		ProfileIdentity: "http://verybigpigcat.woobi.co.kr/ 관리인",
		ProfileLikes:    "Retro Web Design, 90s Anime, Cats, Sleeping",
		ProfileBio:      "세상은 넓고 맛있는 것은 많다. \n하지만 가장 좋은 곳은 역시 이 픽셀로 된 방 안.",
		SinceDate:       "2024.10.10",

		SidebarColor:   "#eaddb4",
		BgStartColor:   "#bed5ff",
		BgEndColor:     "#7296ff",
		GradientAngle:  "180deg",
		AutoGradient:   false,
		MarqueeBgColor: "#000080",
		MainImageURL:   "https://picsum.photos/seed/verybigpigcat-retro/800/550",
		MainImages: []string{
			"https://picsum.photos/seed/slide1/800/550",
			"https://picsum.photos/seed/slide2/800/550",
			"https://picsum.photos/seed/slide3/800/550",
		},
		MainImageArtist: "거대돼지고양이 (Very Big Pig Cat)",
		ProfileImageURL: "https://picsum.photos/seed/verybigpigcat/300/300",

		// Sized for a 12x12 bitmap look.
		FontFamily:    FontGulim,
		FontSize:      "12px",
		LetterSpacing: "0em",
		LineHeight:    "1.4",
	}
}

// SeedEntries returns the diary entries shown before anything is written.
func SeedEntries() []DiaryEntry {
	return []DiaryEntry{
		{
			ID:           "1",
			Date:         "2024. 10. 21.",
			Title:        "가을비 내리는 저녁",
			Content:      "창문에 부딪히는 빗소리가 시부야의 옛 아파트를 떠올리게 합니다. 그때는 모든 것이 조금 더 느리게 흘러갔던 것 같아요.",
			Mood:         "🍂",
			Tags:         []string{"일상", "날씨"},
			AIReflection: "빗방울은 과거의 기억을 깨우는 파동입니다. 고요함 속에 당신의 조각이 머물러 있네요.",
		},
		{
			ID:           "2",
			Date:         "2024. 11. 05.",
			Title:        "픽셀 같은 꿈",
			Content:      "오늘 꿈속에서 8비트 구름으로 이루어진 세상을 보았습니다. 우리는 격자무늬 위를 걷고 있었죠.",
			Mood:         "🌙",
			Tags:         []string{"꿈", "예술"},
			AIReflection: "꿈은 무의식이 그려낸 단순화된 기하학적 세상입니다. 그곳에서 당신은 자유로웠나요?",
		},
	}
}

// SeedBanners returns the neighbor banners shown before anything is written.
func SeedBanners() []Banner {
	return []Banner{
		{
			ID:       "b1",
			ImageURL: "https://picsum.photos/seed/banner1/200/40",
			SiteURL:  "https://yachiyo.net",
			Title:    "Yachiyo",
		},
		{
			ID:       "b2",
			ImageURL: "https://picsum.photos/seed/banner2/200/40",
			SiteURL:  "#",
			Title:    "Sample Neighbor",
		},
	}
}
