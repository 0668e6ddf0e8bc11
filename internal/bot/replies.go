package bot

import (
	"fmt"
	"strconv"

	"github.com/lojasmm/kakaoskill/internal/kakao"
	"github.com/lojasmm/kakaoskill/internal/store"
)

const (
	defaultCarouselSize = 5
	maxCarouselSize     = 10
	recentTurns         = 5
)

// menuQuickReplies are attached to every reply so the user can move between
// the demo blocks without typing.
func menuQuickReplies(k *kakao.Response) {
	k.AddQuickReply("리스트", "리스트 카드")
	k.AddQuickReply("캐러셀")
	k.AddQuickReply("상품")
	k.AddQuickReply("영수증")
	k.AddQuickReply("최근 기록")
}

func helpReply() (*kakao.Response, error) {
	k := kakao.NewResponse()
	k.AddSimpleText("원하는 카드를 골라 주세요. 리스트, 캐러셀, 상품, 영수증, 이미지를 보여 드릴 수 있어요.")
	menuQuickReplies(k)
	return k, nil
}

func listReply() (*kakao.Response, error) {
	k := kakao.NewResponse()

	card := k.InitListCard().SetHeader("리스트 카드 제목")
	card.AddButton(k.InitButton("그냥 텍스트 버튼").SetActionMsg())
	card.AddButton(k.InitButton("link label").SetLink("https://google.com"))
	card.AddButton(k.InitButton("share label").SetActionShare().SetMsg("카톡에 보이는 메시지"))
	card.AddButton(k.InitButton("call label").SetNumber("010-1234-5678"))
	card.AddItem(kakao.NewListItem("title").SetDesc("description").SetLink("https://naver.com"))

	if err := k.AddOutput(card); err != nil {
		return nil, err
	}
	menuQuickReplies(k)
	return k, nil
}

// carouselReply shows size basic cards; size is clamped to 1..maxCarouselSize.
func carouselReply(size int) (*kakao.Response, error) {
	if size <= 0 {
		size = defaultCarouselSize
	}
	size = min(size, maxCarouselSize)

	k := kakao.NewResponse()
	carousel := k.InitCarousel()
	for i := range size {
		card := k.InitBasicCard().
			SetTitle(fmt.Sprintf("Hey %d", i)).
			SetImage("https://kakao").
			AddButton(k.InitButton("자세히").SetMsg(fmt.Sprintf("카드 %d", i)))
		if _, err := carousel.AddCard(card); err != nil {
			return nil, err
		}
	}

	if err := k.AddOutput(carousel); err != nil {
		return nil, err
	}
	menuQuickReplies(k)
	return k, nil
}

func commerceReply() (*kakao.Response, error) {
	k := kakao.NewResponse()

	card, err := kakao.NewCommerceCard("따끈따끈한 보물 상자 팝니다", 10000, kakao.CurrencyWon)
	if err != nil {
		return nil, err
	}
	card.SetDiscount(1000).
		AddThumbnail(k.InitThumbnail("https://t1.kakaocdn.net/openbuilder/sample/lj3JUcmrzC53YIjNDkqbWK.jpg").
			SetLink(kakao.NewLink().SetWeb("https://store.kakao.com"))).
		SetProfile(kakao.NewProfile().SetNickname("보물상자 팝니다")).
		AddButton(k.InitButton("구매하기").SetLink("https://store.kakao.com")).
		AddButton(k.InitButton("전화하기").SetNumber("354-86-00070")).
		AddButton(k.InitButton("공유하기").SetActionShare())

	if err := k.AddOutput(card); err != nil {
		return nil, err
	}
	menuQuickReplies(k)
	return k, nil
}

func receiptReply() (*kakao.Response, error) {
	k := kakao.NewResponse()

	card := k.InitItemCard().
		SetHead("주문 내역").
		AddItem("메뉴", "불고기 피자").
		AddItem("수량", "1").
		AddItem("배달비", "3,000원").
		SetItemListAlignment(kakao.AlignRight).
		SetItemListSummary("합계", "21,000원").
		SetButtonLayout(kakao.LayoutVertical).
		AddButton(k.InitButton("주문 확인").SetMsg("주문 확인"))

	if err := k.AddOutput(card); err != nil {
		return nil, err
	}
	menuQuickReplies(k)
	return k, nil
}

func imageReply() (*kakao.Response, error) {
	k := kakao.NewResponse()
	k.AddSimpleImage("https://t1.kakaocdn.net/openbuilder/sample/lj3JUcmrzC53YIjNDkqbWK.jpg", "보물상자")
	menuQuickReplies(k)
	return k, nil
}

// historyReply lists the user's most recent utterances, newest first.
func historyReply(turns []store.Turn) (*kakao.Response, error) {
	k := kakao.NewResponse()
	if len(turns) == 0 {
		k.AddSimpleText("아직 기록이 없어요.")
		menuQuickReplies(k)
		return k, nil
	}

	card := k.InitListCard().SetHeader("최근 기록")
	for i := len(turns) - 1; i >= 0 && len(turns)-i <= recentTurns; i-- {
		t := turns[i]
		card.AddItem(kakao.NewListItem(t.Utterance).
			SetDesc(t.At.Format("2006-01-02 15:04")).
			SetMsg(t.Utterance))
	}
	card.AddButton(k.InitButton("전체 " + strconv.Itoa(len(turns)) + "건").SetActionMsg())

	if err := k.AddOutput(card); err != nil {
		return nil, err
	}
	menuQuickReplies(k)
	return k, nil
}
