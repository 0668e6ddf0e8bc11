package kakao

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseBasicCardWithWebButton(t *testing.T) {
	k := NewResponse()
	card := k.InitBasicCard()
	card.SetTitle("title").SetDesc("hello").AddButton(
		k.InitButton("labell").SetActionWeb().SetLink("https://naver.com"),
	)
	require.NoError(t, k.AddOutput(card))

	got, err := k.JSON()
	require.NoError(t, err)
	assert.Equal(t,
		`{"version":"2.0","template":{"outputs":[{"basicCard":{"title":"title","description":"hello","buttons":[{"label":"labell","action":"webLink","webLinkUrl":"https://naver.com"}]}}]}}`,
		string(got))
}

func TestResponseListCardWithQuickReplies(t *testing.T) {
	k := NewResponse()
	k.AddQuickReply("오늘", "카톡 발화문1")
	k.AddQuickReply("어제")

	list := k.InitListCard().SetHeader("리스트 카드 제목")
	list.AddButton(NewButton("그냥 텍스트 버튼").SetActionMsg())
	list.AddButton(k.InitButton("link label").SetLink("https://google.com"))
	list.AddButton(k.InitButton("share label").SetActionShare().SetMsg("카톡에 보이는 메시지"))
	list.AddButton(k.InitButton("call label").SetNumber("010-1234-5678"))
	list.AddItem(NewListItem("title").SetDesc("description").SetLink("https://naver.com"))
	require.NoError(t, k.AddOutput(list))

	got, err := k.JSON()
	require.NoError(t, err)
	assert.Equal(t,
		`{"version":"2.0","template":{"outputs":[{"listCard":{"header":{"title":"리스트 카드 제목"},"items":[{"title":"title","description":"description","link":{"web":"https://naver.com"},"action":"message"}],"buttons":[{"label":"그냥 텍스트 버튼","action":"message"},{"label":"link label","action":"webLink","webLinkUrl":"https://google.com"},{"label":"share label","action":"share","messageText":"카톡에 보이는 메시지"},{"label":"call label","action":"phone","phoneNumber":"010-1234-5678"}]}}],"quickReplies":[{"action":"message","label":"오늘","messageText":"카톡 발화문1"},{"action":"message","label":"어제","messageText":"어제"}]}}`,
		string(got))
}

func TestResponseEmpty(t *testing.T) {
	got, err := NewResponse().JSON()
	require.NoError(t, err)
	assert.Equal(t, `{"version":"2.0","template":{}}`, string(got))
}

func TestResponseListCardEndToEnd(t *testing.T) {
	k := NewResponse()
	list := k.InitListCard().SetHeader("title X")
	b, err := NewButton("B").SetAction(ButtonMessage)
	require.NoError(t, err)
	list.AddButton(b)
	list.AddItem(NewListItem("T").SetDesc("d").SetLink("https://x"))
	require.NoError(t, k.AddOutput(list))

	raw, err := k.JSON()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Len(t, doc, 2)
	assert.Equal(t, "2.0", doc["version"])

	template := doc["template"].(map[string]any)
	assert.NotContains(t, template, "quickReplies")

	outputs := template["outputs"].([]any)
	require.Len(t, outputs, 1)
	listCard := outputs[0].(map[string]any)["listCard"].(map[string]any)
	assert.Equal(t, "title X", listCard["header"].(map[string]any)["title"])

	item := listCard["items"].([]any)[0].(map[string]any)
	assert.Equal(t, "message", item["action"])
	assert.Equal(t, "https://x", item["link"].(map[string]any)["web"])
}

func TestResponseSimpleOutputs(t *testing.T) {
	k := NewResponse()
	k.AddSimpleText("안녕 <b>&</b>")
	k.AddSimpleImage("https://img/1.png", "alt")

	got, err := k.JSON()
	require.NoError(t, err)
	assert.Equal(t,
		`{"version":"2.0","template":{"outputs":[{"simpleText":{"text":"안녕 <b>&</b>"}},{"simpleImage":{"imageUrl":"https://img/1.png","altText":"alt"}}]}}`,
		string(got))
}

func TestResponseOutputOrderIsInsertionOrder(t *testing.T) {
	k := NewResponse()
	k.AddSimpleText("first")
	require.NoError(t, k.AddOutput(NewBasicCard().SetTitle("second")))
	k.AddSimpleText("third")

	got, err := k.JSON()
	require.NoError(t, err)
	assert.Equal(t,
		`{"version":"2.0","template":{"outputs":[{"simpleText":{"text":"first"}},{"basicCard":{"title":"second"}},{"simpleText":{"text":"third"}}]}}`,
		string(got))
}

func TestResponseAddOutputWrapsEveryKind(t *testing.T) {
	carousel, err := NewCarousel().AddCard(NewBasicCard().SetTitle("c"))
	require.NoError(t, err)
	commerce, err := NewCommerceCard("d", 1000, CurrencyWon)
	require.NoError(t, err)

	cases := []struct {
		name string
		c    Component
		tag  string
	}{
		{"simpleText", NewSimpleText("t"), "simpleText"},
		{"simpleImage", NewSimpleImage("u", "a"), "simpleImage"},
		{"basicCard", NewBasicCard(), "basicCard"},
		{"commerceCard", commerce, "commerceCard"},
		{"listCard", NewListCard(), "listCard"},
		{"itemCard", NewItemCard(), "itemCard"},
		{"carousel", carousel, "carousel"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			k := NewResponse()
			require.NoError(t, k.AddOutput(tc.c))

			raw, err := k.JSON()
			require.NoError(t, err)
			var doc struct {
				Template struct {
					Outputs []map[string]json.RawMessage `json:"outputs"`
				} `json:"template"`
			}
			require.NoError(t, json.Unmarshal(raw, &doc))
			require.Len(t, doc.Template.Outputs, 1)
			assert.Len(t, doc.Template.Outputs[0], 1)
			assert.Contains(t, doc.Template.Outputs[0], tc.tag)
		})
	}
}

type foreignComponent struct{}

func (foreignComponent) Kind() Kind { return Kind(99) }

func TestResponseAddOutputRejectsUnknownKind(t *testing.T) {
	k := NewResponse()
	err := k.AddOutput(foreignComponent{})
	require.ErrorIs(t, err, ErrUnknownType)
	assert.Empty(t, k.Template.Outputs)

	require.ErrorIs(t, k.AddOutput(nil), ErrUnknownType)
}

func TestResponseAddOutputRejectsNilAndZeroValues(t *testing.T) {
	k := NewResponse()

	require.ErrorIs(t, k.AddOutput((*BasicCard)(nil)), ErrUnknownType)
	require.ErrorIs(t, k.AddOutput((*SimpleText)(nil)), ErrUnknownType)
	require.ErrorIs(t, k.AddOutput(Output{}), ErrUnknownType)
	require.ErrorIs(t, k.AddOutput(Output{kind: KindBasicCard}), ErrUnknownType)
	assert.Empty(t, k.Template.Outputs)

	got, err := k.JSON()
	require.NoError(t, err)
	assert.Equal(t, `{"version":"2.0","template":{}}`, string(got))
}

func TestResponseLineSeparatorsStayRaw(t *testing.T) {
	text := "a\u2028b\u2029c \\u2028 <&>"
	got, err := NewResponse().AddSimpleText(text).JSON()
	require.NoError(t, err)

	want := "{\"version\":\"2.0\",\"template\":{\"outputs\":[{\"simpleText\":{\"text\":\"a\u2028b\u2029c \\\\u2028 <&>\"}}]}}"
	assert.Equal(t, want, string(got))

	var doc struct {
		Template struct {
			Outputs []struct {
				SimpleText SimpleText `json:"simpleText"`
			} `json:"outputs"`
		} `json:"template"`
	}
	require.NoError(t, json.Unmarshal(got, &doc))
	assert.Equal(t, text, doc.Template.Outputs[0].SimpleText.Text)
}

func TestUnescapeLineSeparators(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`"plain"`, `"plain"`},
		{`"\u2028"`, "\"\u2028\""},
		{`"\u2029x"`, "\"\u2029x\""},
		{`"\\u2028"`, `"\\u2028"`},
		{`"\\\u2028"`, "\"\\\\\u2028\""},
		{`"\u2027\n"`, `"\u2027\n"`},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, string(unescapeLineSeparators([]byte(tc.in))), tc.in)
	}
}

func TestResponseAddOutputKeepsTaggedOutput(t *testing.T) {
	o, err := NewOutput(NewSimpleText("hi"))
	require.NoError(t, err)

	k := NewResponse()
	require.NoError(t, k.AddOutput(o))

	got, err := k.JSON()
	require.NoError(t, err)
	assert.Equal(t, `{"version":"2.0","template":{"outputs":[{"simpleText":{"text":"hi"}}]}}`, string(got))
}

func TestResponseQuickReplyAction(t *testing.T) {
	k := NewResponse()
	k.AddQuickReplyAction(QuickReplyBlock, "메뉴", "메뉴 보기")
	k.AppendQuickReply(NewQuickReply(QuickReplyBlock, "주문", "주문").SetBlockID("b1").SetExtra(map[string]any{}))

	got, err := k.JSON()
	require.NoError(t, err)
	assert.Equal(t,
		`{"version":"2.0","template":{"quickReplies":[{"action":"block","label":"메뉴","messageText":"메뉴 보기"},{"action":"block","label":"주문","messageText":"주문","blockId":"b1","extra":{}}]}}`,
		string(got))
}

func TestResponseClear(t *testing.T) {
	k := NewResponse()
	k.AddSimpleText("a").AddQuickReply("q").AddContext("ctx", 2, nil).SetData(map[string]any{"k": 1})
	k.Clear()

	got, err := k.JSON()
	require.NoError(t, err)
	assert.Equal(t, `{"version":"2.0","template":{}}`, string(got))

	k.AddSimpleText("b")
	got, err = k.JSON()
	require.NoError(t, err)
	assert.Equal(t, `{"version":"2.0","template":{"outputs":[{"simpleText":{"text":"b"}}]}}`, string(got))
}

func TestResponseContextAndData(t *testing.T) {
	k := NewResponse()
	k.AddSimpleText("x")
	k.AddContext("order", 3, map[string]string{"menu": "pizza"})
	k.AddContext("greeting", 0, nil)
	k.SetData(map[string]any{"msg": "ok"})

	got, err := k.JSON()
	require.NoError(t, err)
	assert.Equal(t,
		`{"version":"2.0","template":{"outputs":[{"simpleText":{"text":"x"}}]},"context":{"values":[{"name":"order","lifeSpan":3,"params":{"menu":"pizza"}},{"name":"greeting","lifeSpan":0}]},"data":{"msg":"ok"}}`,
		string(got))
}

func TestResponseInitDoesNotTouchReceiver(t *testing.T) {
	k := NewResponse()
	k.InitBasicCard()
	k.InitButton("b")
	k.InitCarousel()
	k.InitListItem("i")
	k.InitThumbnail("u")
	assert.Equal(t, `{"version":"2.0","template":{}}`, k.String())
	assert.Equal(t, CurrencyWon, k.InitCommerceCard().Currency)
}

func TestResponseJSONDoesNotMutate(t *testing.T) {
	k := NewResponse()
	require.NoError(t, k.AddOutput(NewBasicCard().SetTitle("t")))
	first, err := k.JSON()
	require.NoError(t, err)
	second, err := k.JSON()
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, string(first), k.String())
}

func TestResponseAliasedComponentSharesEdits(t *testing.T) {
	shared := NewButton("share").SetActionShare()
	a := NewBasicCard().AddButton(shared)
	b := NewBasicCard().AddButton(shared)
	shared.SetLabel("changed")

	assert.Same(t, a.Buttons[0], b.Buttons[0])
	assert.Equal(t, "changed", a.Buttons[0].Label)
}
