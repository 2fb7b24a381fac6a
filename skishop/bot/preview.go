package bot

import (
	tele "gopkg.in/telebot.v4"

	tghelpers "github.com/m3rciful/skishopbot/core/telegram/helpers"
)

// maxAlbumPhotos is Telegram's media group limit; previews never send more.
const maxAlbumPhotos = 10

// stagedPhotos wraps transport file IDs for re-sending before upload.
func stagedPhotos(fileIDs []string) []*tele.Photo {
	photos := make([]*tele.Photo, 0, len(fileIDs))
	for _, id := range fileIDs {
		photos = append(photos, &tele.Photo{File: tele.File{FileID: id}})
	}
	return photos
}

// urlPhotos wraps durable URLs for re-sending after upload.
func urlPhotos(urls []string) []*tele.Photo {
	photos := make([]*tele.Photo, 0, len(urls))
	for _, u := range urls {
		photos = append(photos, &tele.Photo{File: tele.FromURL(u)})
	}
	return photos
}

// albumFor caps the photos at the group limit and puts the caption on the
// first item, which Telegram shows for the whole group.
func albumFor(photos []*tele.Photo, caption string) tele.Album {
	if len(photos) > maxAlbumPhotos {
		photos = photos[:maxAlbumPhotos]
	}
	album := make(tele.Album, 0, len(photos))
	for i, p := range photos {
		if i == 0 {
			p.Caption = caption
		}
		album = append(album, p)
	}
	return album
}

// sendPreview renders a product summary with its photos. The same rule
// serves staged previews at confirm time and stored products for /all:
// no photos -> text only, one photo -> captioned photo, several -> album.
func sendPreview(c tele.Context, summary string, photos []*tele.Photo) error {
	opts := &tele.SendOptions{ParseMode: tele.ModeMarkdown}
	switch len(photos) {
	case 0:
		return tghelpers.SendMD(c, summary)
	case 1:
		photos[0].Caption = summary
		return c.Send(photos[0], opts)
	default:
		return c.SendAlbum(albumFor(photos, summary), opts)
	}
}
