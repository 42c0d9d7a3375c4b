// Package state はギャラリー画面のクライアント状態を純粋な reducer としてモデル化します。
//
// 状態はサーバーの応答が確定したときだけ遷移します。いいねやコメントを
// 応答前に推測で反映することはありません。
package state

// Filters はフィードの取得条件です。値はAPIのクエリパラメータと同じです。
type Filters struct {
	Sort   string
	Type   string
	Search string
}

// Item はギャラリーに表示する1件分の集計です。
type Item struct {
	ID       string
	Likes    int
	IsLiked  bool
	Comments int
}

// State はギャラリーの表示状態です。
// Generation はフィルタ変更ごとに増え、古い条件で発行したページ応答を捨てるのに使います。
type State struct {
	Filters    Filters
	Items      []Item
	Page       int // 読み込み済みの最終ページ。0は未読み込み
	PageSize   int
	Loading    bool
	HasMore    bool
	Generation int
	Err        string
}

// New は最初のページを要求できる初期状態を返します。
func New(filters Filters, pageSize int) State {
	return State{Filters: filters, PageSize: pageSize, HasMore: true}
}

// NextPage は次に要求すべきページ番号です。
func (s State) NextPage() int {
	return s.Page + 1
}

// Action は reducer への入力です。
type Action interface {
	isAction()
}

// FiltersChanged は並び順・種別・検索語の変更です。読み込み済みのページは破棄されます。
type FiltersChanged struct{ Filters Filters }

// PageRequested は次ページの読み込み開始です（無限スクロールの末尾到達など）。
type PageRequested struct{}

// PageLoaded はページの取得成功です。Generation は要求時の State.Generation です。
type PageLoaded struct {
	Generation int
	Page       int
	Items      []Item
}

// PageFailed はページの取得失敗です。
type PageFailed struct {
	Generation int
	Err        string
}

// LikeConfirmed はいいねトグルのサーバー応答です。
type LikeConfirmed struct {
	MediaID string
	Likes   int
	IsLiked bool
}

// CommentConfirmed はコメント投稿の成功です。
type CommentConfirmed struct{ MediaID string }

// DeleteConfirmed はメディア削除の成功です。
type DeleteConfirmed struct{ MediaID string }

// MutationFailed はいいね・コメント・削除の失敗です。表示中の集計は変わりません。
type MutationFailed struct{ Err string }

func (FiltersChanged) isAction()   {}
func (PageRequested) isAction()    {}
func (PageLoaded) isAction()       {}
func (PageFailed) isAction()       {}
func (LikeConfirmed) isAction()    {}
func (CommentConfirmed) isAction() {}
func (DeleteConfirmed) isAction()  {}
func (MutationFailed) isAction()   {}

// Reduce は action を適用した新しい状態を返します。s は変更しません。
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case FiltersChanged:
		if a.Filters == s.Filters {
			return s
		}
		return State{
			Filters:    a.Filters,
			PageSize:   s.PageSize,
			HasMore:    true,
			Generation: s.Generation + 1,
		}

	case PageRequested:
		if s.Loading || !s.HasMore {
			return s
		}
		s.Loading = true
		s.Err = ""
		return s

	case PageLoaded:
		if a.Generation != s.Generation || !s.Loading {
			return s
		}
		s.Loading = false
		s.Page = a.Page
		if len(a.Items) == 0 || (s.PageSize > 0 && len(a.Items) < s.PageSize) {
			s.HasMore = false
		}
		s.Items = appendUnique(s.Items, a.Items)
		return s

	case PageFailed:
		if a.Generation != s.Generation {
			return s
		}
		s.Loading = false
		s.Err = a.Err
		return s

	case LikeConfirmed:
		s.Items = update(s.Items, a.MediaID, func(it *Item) {
			it.Likes = a.Likes
			it.IsLiked = a.IsLiked
		})
		return s

	case CommentConfirmed:
		s.Items = update(s.Items, a.MediaID, func(it *Item) { it.Comments++ })
		return s

	case DeleteConfirmed:
		out := make([]Item, 0, len(s.Items))
		for _, it := range s.Items {
			if it.ID != a.MediaID {
				out = append(out, it)
			}
		}
		s.Items = out
		return s

	case MutationFailed:
		s.Err = a.Err
		return s
	}
	return s
}

// appendUnique は既存にないIDだけを追加した新しいスライスを返します。
// 読み込み中に新規投稿があるとページ境界がずれて重複するためです。
func appendUnique(items, page []Item) []Item {
	seen := make(map[string]struct{}, len(items))
	out := make([]Item, 0, len(items)+len(page))
	for _, it := range items {
		seen[it.ID] = struct{}{}
		out = append(out, it)
	}
	for _, it := range page {
		if _, ok := seen[it.ID]; ok {
			continue
		}
		seen[it.ID] = struct{}{}
		out = append(out, it)
	}
	return out
}

func update(items []Item, id string, fn func(*Item)) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	for i := range out {
		if out[i].ID == id {
			fn(&out[i])
		}
	}
	return out
}
