package services

import (
	"bytes"
	"context"
	"fmt"
	"hash/fnv"
	"image"
	"image/color"
	"os"
	"strings"
	"time"

	_ "image/jpeg"
	_ "image/png"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/google/uuid"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"

	"github.com/lasudevlab/learnhub-backend/internal/logger"
	"github.com/lasudevlab/learnhub-backend/internal/media"
	"github.com/lasudevlab/learnhub-backend/internal/types"
)

// AvatarService renders the circular initials avatar a profile starts with
// and accepts uploaded replacements.
type AvatarService interface {
	CreateAndUploadAvatar(ctx context.Context, profile *types.Profile) error
	CreateAndUploadAvatarFromImage(ctx context.Context, profile *types.Profile, raw []byte) error
	GenerateAvatar(profile *types.Profile) (bytes.Buffer, error)
}

type avatarService struct {
	log   *logger.Logger
	store media.Store

	bgColors []color.NRGBA
	fontFace font.Face
}

// avatarPalette is the fixed background palette; a profile's color is picked
// by hashing its id so re-renders stay stable.
var avatarPalette = []color.NRGBA{
	{R: 0x2E, G: 0x7D, B: 0x32, A: 0xFF},
	{R: 0x15, G: 0x65, B: 0xC0, A: 0xFF},
	{R: 0x6A, G: 0x1B, B: 0x9A, A: 0xFF},
	{R: 0xC6, G: 0x28, B: 0x28, A: 0xFF},
	{R: 0xEF, G: 0x6C, B: 0x00, A: 0xFF},
	{R: 0x00, G: 0x83, B: 0x8F, A: 0xFF},
	{R: 0x4E, G: 0x34, B: 0x2E, A: 0xFF},
	{R: 0x37, G: 0x47, B: 0x4F, A: 0xFF},
}

func NewAvatarService(log *logger.Logger, store media.Store) (AvatarService, error) {
	serviceLog := log.With("service", "AvatarService")

	var face font.Face
	fontPath := strings.TrimSpace(os.Getenv("AVATAR_FONT"))
	if fontPath == "" {
		serviceLog.Warn("AVATAR_FONT not set, avatars will use the built-in font")
	} else {
		loaded, err := loadFontFace(fontPath, 206)
		if err != nil {
			serviceLog.Warn("could not load avatar font, falling back to built-in", "font", fontPath, "error", err)
		} else {
			face = loaded
		}
	}

	return &avatarService{
		log:      serviceLog,
		store:    store,
		bgColors: avatarPalette,
		fontFace: face,
	}, nil
}

func (as *avatarService) CreateAndUploadAvatar(ctx context.Context, profile *types.Profile) error {
	buf, err := as.GenerateAvatar(profile)
	if err != nil {
		return err
	}
	return as.swapAvatar(ctx, profile, buf.Bytes())
}

func (as *avatarService) GenerateAvatar(profile *types.Profile) (bytes.Buffer, error) {
	const size = 512

	dc := gg.NewContext(size, size)

	dc.DrawCircle(float64(size)/2, float64(size)/2, float64(size)/2)
	dc.Clip()

	dc.SetColor(as.pickColor(profile.ID))
	dc.DrawRectangle(0, 0, float64(size), float64(size))
	dc.Fill()

	initials := computeInitials(profile.FullName)

	if as.fontFace != nil {
		dc.SetFontFace(as.fontFace)
	}
	tw, th := dc.MeasureString(initials)
	cx, cy := float64(size)/2, float64(size)/2

	dc.SetColor(color.White)
	dc.DrawString(initials, cx-(tw/2), cy+(th/2))

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return buf, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return buf, nil
}

func (as *avatarService) CreateAndUploadAvatarFromImage(ctx context.Context, profile *types.Profile, raw []byte) error {
	if profile == nil || profile.ID == uuid.Nil {
		return fmt.Errorf("profile required")
	}
	processed, err := processUploadedAvatar(raw, 512)
	if err != nil {
		return err
	}
	return as.swapAvatar(ctx, profile, processed.Bytes())
}

// swapAvatar uploads under a versioned key, points the profile at it, and
// best-effort deletes the previous object.
func (as *avatarService) swapAvatar(ctx context.Context, profile *types.Profile, png []byte) error {
	oldKey := strings.TrimSpace(profile.AvatarKey)
	newKey := fmt.Sprintf("user_avatar/%s/%d.png", profile.ID.String(), time.Now().UnixNano())

	if err := as.store.Upload(ctx, newKey, bytes.NewReader(png)); err != nil {
		return fmt.Errorf("failed to upload avatar: %w", err)
	}

	profile.AvatarKey = newKey
	profile.AvatarURL = as.store.PublicURL(newKey)

	if oldKey != "" && oldKey != newKey {
		if err := as.store.Delete(ctx, oldKey); err != nil {
			as.log.Warn("failed to delete old avatar (ignored)", "oldKey", oldKey, "error", err)
		}
	}
	return nil
}

func (as *avatarService) pickColor(id uuid.UUID) color.NRGBA {
	h := fnv.New32a()
	h.Write(id[:])
	return as.bgColors[int(h.Sum32())%len(as.bgColors)]
}

func computeInitials(fullName string) string {
	tokens := strings.Fields(fullName)
	if len(tokens) == 0 {
		return "U"
	}
	var b strings.Builder
	for i, tok := range tokens {
		if i >= 2 {
			break
		}
		r := []rune(tok)
		b.WriteString(strings.ToUpper(string(r[0])))
	}
	return b.String()
}

func processUploadedAvatar(raw []byte, size int) (bytes.Buffer, error) {
	var out bytes.Buffer

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return out, fmt.Errorf("decode image: %w", err)
	}

	// Center-crop to square
	b := img.Bounds()
	w := b.Dx()
	h := b.Dy()
	side := w
	if h < w {
		side = h
	}
	x0 := b.Min.X + (w-side)/2
	y0 := b.Min.Y + (h-side)/2

	cropRect := image.Rect(0, 0, side, side)
	cropped := image.NewRGBA(cropRect)
	draw.Draw(cropped, cropRect, img, image.Point{X: x0, Y: y0}, draw.Src)

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), cropped, cropped.Bounds(), draw.Over, nil)

	dc := gg.NewContext(size, size)
	dc.DrawCircle(float64(size)/2, float64(size)/2, float64(size)/2)
	dc.Clip()
	dc.DrawImage(dst, 0, 0)

	if err := dc.EncodePNG(&out); err != nil {
		return out, fmt.Errorf("encode png: %w", err)
	}
	return out, nil
}

func loadFontFace(fontPath string, size float64) (font.Face, error) {
	fontBytes, err := os.ReadFile(fontPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read font file: %w", err)
	}
	parsedFont, err := truetype.Parse(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TTF: %w", err)
	}
	return truetype.NewFace(parsedFont, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	}), nil
}
