package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMediaType_Valid(t *testing.T) {
	t.Parallel()

	assert.True(t, TypeImage.Valid())
	assert.True(t, TypeVideo.Valid())
	assert.False(t, MediaType("gif").Valid())
	assert.False(t, MediaType("").Valid())
}

// TestMedia_LikedBy はいいね一覧から指定ユーザーの有無を判定できることを検証します。
func TestMedia_LikedBy(t *testing.T) {
	t.Parallel()

	m := Media{ID: "m1", Likes: []Like{{UserID: 1, MediaID: "m1"}, {UserID: 3, MediaID: "m1"}}}

	assert.True(t, m.LikedBy(1))
	assert.True(t, m.LikedBy(3))
	assert.False(t, m.LikedBy(2))
	assert.False(t, Media{}.LikedBy(1))
}

func TestMedia_IsVideo(t *testing.T) {
	t.Parallel()

	assert.True(t, Media{Type: TypeVideo, Video: &VideoDetails{Duration: 3}}.IsVideo())
	assert.False(t, Media{Type: TypeImage}.IsVideo())
}
