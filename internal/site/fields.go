package site

import (
	"fmt"
	"strconv"
	"strings"
)

// SettingField names a settings field editable from the dashboard.
type SettingField string

const (
	FieldSiteTitle       SettingField = "siteTitle"
	FieldMarqueeText     SettingField = "marqueeText"
	FieldSystemMessage   SettingField = "systemMessage"
	FieldProfileName     SettingField = "profileName"
	FieldProfileStatus   SettingField = "profileStatus"
	FieldProfileIdentity SettingField = "profileIdentity"
	FieldProfileLikes    SettingField = "profileLikes"
	FieldProfileDislikes SettingField = "profileDislikes"
	FieldProfileBio      SettingField = "profileBio"
	FieldProfileFavs     SettingField = "profileFavs"
	FieldProfileImageURL SettingField = "profileImageUrl"
	FieldSinceDate       SettingField = "sinceDate"
	FieldSidebarColor    SettingField = "sidebarColor"
	FieldBgStartColor    SettingField = "bgStartColor"
	FieldBgEndColor      SettingField = "bgEndColor"
	FieldGradientAngle   SettingField = "gradientAngle"
	FieldAutoGradient    SettingField = "autoGradient"
	FieldMarqueeBgColor  SettingField = "marqueeBgColor"
	FieldMainImageArtist SettingField = "mainImageArtist"
	FieldFontFamily      SettingField = "fontFamily"
	FieldFontSize        SettingField = "fontSize"
	FieldLetterSpacing   SettingField = "letterSpacing"
	FieldLineHeight      SettingField = "lineHeight"
)

// GeneralFields are edited on the dashboard's General tab.
var GeneralFields = []SettingField{
	FieldSiteTitle,
	FieldMarqueeText,
	FieldSystemMessage,
	FieldSidebarColor,
	FieldBgStartColor,
	FieldBgEndColor,
	FieldGradientAngle,
	FieldAutoGradient,
	FieldMarqueeBgColor,
	FieldFontFamily,
	FieldFontSize,
	FieldLetterSpacing,
	FieldLineHeight,
}

// ProfileFields are edited on the dashboard's Profile tab.
var ProfileFields = []SettingField{
	FieldProfileName,
	FieldProfileStatus,
	FieldProfileIdentity,
	FieldProfileImageURL,
	FieldProfileLikes,
	FieldProfileDislikes,
	FieldProfileBio,
	FieldProfileFavs,
	FieldSinceDate,
	FieldMainImageArtist,
}

func (s *Settings) textField(f SettingField) *string {
	switch f {
	case FieldSiteTitle:
		return &s.SiteTitle
	case FieldMarqueeText:
		return &s.MarqueeText
	case FieldSystemMessage:
		return &s.SystemMessage
	case FieldProfileName:
		return &s.ProfileName
	case FieldProfileStatus:
		return &s.ProfileStatus
	case FieldProfileIdentity:
		return &s.ProfileIdentity
	case FieldProfileLikes:
		return &s.ProfileLikes
	case FieldProfileDislikes:
		return &s.ProfileDislikes
	case FieldProfileBio:
		return &s.ProfileBio
	case FieldProfileFavs:
		return &s.ProfileFavs
	case FieldProfileImageURL:
		return &s.ProfileImageURL
	case FieldSinceDate:
		return &s.SinceDate
	case FieldSidebarColor:
		return &s.SidebarColor
	case FieldBgStartColor:
		return &s.BgStartColor
	case FieldBgEndColor:
		return &s.BgEndColor
	case FieldGradientAngle:
		return &s.GradientAngle
	case FieldMarqueeBgColor:
		return &s.MarqueeBgColor
	case FieldMainImageArtist:
		return &s.MainImageArtist
	case FieldFontSize:
		return &s.FontSize
	case FieldLetterSpacing:
		return &s.LetterSpacing
	case FieldLineHeight:
		return &s.LineHeight
	}
	return nil
}

// Get returns the field's value rendered as text.
func (s Settings) Get(f SettingField) string {
	switch f {
	case FieldAutoGradient:
		return strconv.FormatBool(s.AutoGradient)
	case FieldFontFamily:
		return s.FontFamily
	}
	if p := s.textField(f); p != nil {
		return *p
	}
	return ""
}

// Set assigns value to the named field. Text fields take any value;
// autoGradient takes a boolean and fontFamily takes Gulim or Dotum.
func (s *Settings) Set(f SettingField, value string) error {
	switch f {
	case FieldAutoGradient:
		b, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("%s: %w", f, ErrInvalidValue)
		}
		s.AutoGradient = b
		return nil
	case FieldFontFamily:
		v := strings.TrimSpace(value)
		if !strings.EqualFold(v, FontGulim) && !strings.EqualFold(v, FontDotum) {
			return fmt.Errorf("%s %q: %w", f, value, ErrInvalidValue)
		}
		if strings.EqualFold(v, FontGulim) {
			s.FontFamily = FontGulim
		} else {
			s.FontFamily = FontDotum
		}
		return nil
	}
	p := s.textField(f)
	if p == nil {
		return fmt.Errorf("%q: %w", f, ErrUnknownField)
	}
	*p = value
	return nil
}

// Label returns the dashboard label for f.
func (f SettingField) Label() string {
	switch f {
	case FieldSiteTitle:
		return "사이트 제목"
	case FieldMarqueeText:
		return "Marquee Text"
	case FieldSystemMessage:
		return "System Message"
	case FieldSidebarColor:
		return "사이드바 색"
	case FieldProfileName:
		return "이름"
	case FieldProfileStatus:
		return "상태 (Status)"
	case FieldProfileIdentity:
		return "정체 (Identity)"
	case FieldProfileImageURL:
		return "프로필 이미지 URL"
	case FieldProfileLikes:
		return "좋아하는 것들 (Likes)"
	case FieldProfileBio:
		return "자기소개 (Bio)"
	}
	return string(f)
}
